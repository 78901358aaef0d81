// Package sessionfile decodes Cool Edit Pro / Adobe Audition 1.x multitrack
// session files (.ses) into a plain Go model.
//
// # Quick Start
//
// Reading a session:
//
//	session, err := sessionfile.Load("song.ses")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Printf("%d Hz, %.1f BPM\n", session.SampleRate, session.Tempo.BeatsPerMinute)
//	for i, track := range session.Tracks {
//		fmt.Printf("track %d: %s (mute=%v)\n", i+1, track.Title, track.Mute)
//	}
//
// # Model
//
//	[Session]
//	  ├─ [Tempo]   - BPM, beats per bar, ticks per beat
//	  ├─ [Track]   - volume, title, mute; Tracks[i] has id i+1
//	  ├─ [Wave]    - id and filename of a referenced audio file
//	  └─ [Block]   - a region of a wave placed on a track
//
// Cross references (Block.WaveID, Block.TrackID) are plain ids. Resolve them
// with Session.Wave and Session.Track.
//
// # File Layout
//
// A session starts with the 8-byte signature "COOLNESS" and a 32-bit length
// covering the rest of the file. Then follows a run of chunks, each a 4-byte
// tag, a 32-bit little-endian payload length and the payload. Known tags:
//
//	"hdr "         sample rate, master volume, session filename
//	"tmpo"         tempo
//	"trks"         track count followed by fixed-size track records
//	"LIST" "FILE"  container of "wav " chunks
//	"wav "         wave reference with a variable-length filename
//	"blk "         block count followed by fixed-size placement records
//
// Unknown tags are skipped by their declared length.
//
// # Error Handling
//
// Every failure aborts the load. There is no partial result and no warning
// mode. Classify failures with errors.Is:
//
//	_, err := sessionfile.Load("song.ses")
//	switch {
//	case errors.Is(err, sessionfile.ErrMalformedHeader):
//		// not a session file, or the length field is wrong
//	case errors.Is(err, sessionfile.ErrTruncatedInput):
//		// the file ends early
//	}
//
// Use errors.As with the *Error types for offsets and tags.
//
// # Concurrency
//
// A single load is one synchronous pass over an in-memory buffer. LoadMany
// decodes several files in parallel.
package sessionfile
