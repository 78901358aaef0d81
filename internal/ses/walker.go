package ses

import (
	"fmt"

	"github.com/simonhull/sessionfile/internal/binary"
	"github.com/simonhull/sessionfile/internal/types"
)

// Chunk tags.
const (
	tagList   = "LIST"
	tagFile   = "FILE"
	tagHeader = "hdr "
	tagTempo  = "tmpo"
	tagTracks = "trks"
	tagWave   = "wav "
	tagBlocks = "blk "
)

// walk decodes the chunk at the cursor and returns its effective tag.
//
// depth is the list nesting level of the chunk; top-level chunks are at 0.
// On success the cursor sits exactly on the chunk's declared end.
func (d *decoder) walk(depth int) (string, error) {
	chunkOffset := d.c.Position()

	tag, err := d.c.ReadTag("chunk tag")
	if err != nil {
		return "", err
	}

	if tag == tagList {
		inner, err := d.c.ReadTag("list type")
		if err != nil {
			return "", err
		}
		if inner != tagFile {
			return "", &types.MalformedChunkError{
				Path:   d.c.Path(),
				Tag:    tagList,
				Offset: chunkOffset,
				Reason: fmt.Sprintf("list type is %q, expected %q", inner, tagFile),
			}
		}
		tag = inner
	}

	length, err := binary.ReadLE[uint32](d.c, "chunk length")
	if err != nil {
		return "", err
	}
	start := d.c.Position()

	if int64(length) > d.c.Remaining() {
		err := &types.TruncatedInputError{
			Path:   d.c.Path(),
			What:   fmt.Sprintf("%q chunk payload", tag),
			Offset: start,
			Length: int64(length),
			Size:   d.c.Size(),
		}
		if end := start + d.c.Remaining(); end < d.c.Size() {
			err.Limit = end
		}
		return "", err
	}

	d.log.Debug("chunk", "tag", tag, "length", length, "offset", start, "depth", depth)

	// Records never read past the payload, so a short collection is
	// truncated input rather than a read into the next chunk.
	bound := d.c.Limit(int64(length))
	err = d.dispatch(tag, length, start, depth)
	d.c.Restore(bound)
	if err != nil {
		return "", err
	}

	if consumed := d.c.Position() - start; consumed != int64(length) {
		return "", &types.ChunkLengthMismatchError{
			Path:     d.c.Path(),
			Tag:      tag,
			Start:    start,
			Declared: length,
			Consumed: consumed,
		}
	}

	return tag, nil
}

func (d *decoder) dispatch(tag string, length uint32, start int64, depth int) error {
	// An empty record or collection contributes nothing. Wave references
	// always carry fixed fields, so they fall through to their length check.
	if length == 0 && tag != tagWave {
		return nil
	}

	switch tag {
	case tagHeader:
		h, err := readHeaderRecord(d.c)
		if err != nil {
			return err
		}
		if err := d.applyHeader(h); err != nil {
			return d.malformed(tag, start, err)
		}

	case tagTempo:
		t, err := readTempoRecord(d.c)
		if err != nil {
			return err
		}
		d.applyTempo(t)

	case tagTracks:
		count, err := binary.ReadLE[uint32](d.c, "track count")
		if err != nil {
			return err
		}
		d.log.Debug("tracks", "count", count)
		for i := uint32(0); i < count; i++ {
			t, err := readTrackRecord(d.c)
			if err != nil {
				return fmt.Errorf("track %d of %d: %w", i+1, count, err)
			}
			if err := d.appendTrack(t); err != nil {
				return d.malformed(tag, start, err)
			}
		}

	case tagFile:
		return d.walkContainer(length, start, depth)

	case tagWave:
		w, err := readWaveRecord(d.c, length)
		if err != nil {
			return err
		}
		if w.Marker != types.WaveMarker {
			d.log.Debug("unexpected wave marker", "id", w.ID, "marker", w.Marker)
		}
		if err := d.appendWave(w); err != nil {
			return d.malformed(tag, start, err)
		}

	case tagBlocks:
		count, err := binary.ReadLE[uint32](d.c, "block count")
		if err != nil {
			return err
		}
		d.log.Debug("blocks", "count", count)
		for i := uint32(0); i < count; i++ {
			b, err := readBlockRecord(d.c)
			if err != nil {
				return fmt.Errorf("block %d of %d: %w", i+1, count, err)
			}
			d.appendBlock(b)
		}

	default:
		d.log.Debug("skipping unknown chunk", "tag", tag, "length", length)
		return d.c.Skip(int64(length), fmt.Sprintf("unknown %q chunk", tag))
	}

	return nil
}

// walkContainer decodes the children of a list container. Wave references
// are read one after another; the run ends at the container's declared end
// or after the first child that is not a wave reference.
func (d *decoder) walkContainer(length uint32, start int64, depth int) error {
	if depth+1 > d.maxDepth {
		return &types.MalformedChunkError{
			Path:   d.c.Path(),
			Tag:    tagFile,
			Offset: start,
			Reason: fmt.Sprintf("containers nested deeper than %d levels", d.maxDepth),
		}
	}

	end := start + int64(length)
	for d.c.Position() < end {
		tag, err := d.walk(depth + 1)
		if err != nil {
			return err
		}
		if tag != tagWave {
			break
		}
	}
	return nil
}

func (d *decoder) malformed(tag string, offset int64, err error) error {
	return &types.MalformedChunkError{
		Path:   d.c.Path(),
		Tag:    tag,
		Offset: offset,
		Reason: err.Error(),
	}
}
