package buffer_test

import (
	"fmt"

	"github.com/cwbudde/algo-noise/dsp/buffer"
)

func ExampleAudioBuffer() {
	b := buffer.New(4)
	b.Transition(buffer.StateFree, buffer.StateAcquired)

	copy(b.Samples(), []int16{1, 2, 3, 4})
	b.SetCount(b.Cap())

	fmt.Println(b.State(), b.Full(), b.Valid())

	// Output:
	// acquired true [1 2 3 4]
}
