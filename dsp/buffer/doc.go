// Package buffer provides the fixed-capacity int16 audio buffers exchanged
// between the noise generator and the playback consumer, and the ownership
// states they cycle through:
//
//	Free -> Acquired -> Released -> InFlight -> Free
//
// Acquired is owned by the producer, Released and InFlight by the consumer.
// Transitions are compare-and-swap, so a buffer is never claimed by both
// sides at once.
package buffer
