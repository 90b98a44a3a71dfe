// Package noise runs the generation loop: it acquires a free buffer from a
// stream.Streamer, fills every slot with shaped noise and releases it to the
// output sink, until its context is cancelled or the streamer is closed.
//
// The random sampler is owned by the Generator and passed in explicitly, so
// several independent generators can run in one process and tests can
// reproduce a stream from its seed.
package noise
