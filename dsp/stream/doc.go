// Package stream hands fixed-capacity audio buffers back and forth between
// one producer (the generation loop) and one consumer (the playback sink).
//
// The producer calls [Streamer.Acquire], fills every slot and calls
// [Streamer.Release]. The consumer calls [Streamer.Take] (or TryTake from a
// real-time callback), plays the buffer and hands it back with
// [Streamer.Return]. Buffers move through the queues in acquisition order,
// so playback order equals generation order.
//
// Acquire is the producer's only suspension point. It blocks until the
// consumer returns a buffer, the context is cancelled or the streamer is
// closed.
package stream
