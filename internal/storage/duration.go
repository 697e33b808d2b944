package storage

import (
	"encoding/binary"
	"errors"
	"io"
)

var errNoMvhd = errors.New("mvhd box not found")

// probeMP4Duration extracts the presentation duration in seconds from an
// ISO-BMFF (mp4/mov) file by locating the moov/mvhd box. The remote host does
// not report duration, so it is read locally before upload.
func probeMP4Duration(r io.ReadSeeker) (float64, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}
	for {
		typ, payload, _, err := readBoxHeader(r)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return 0, errNoMvhd
			}
			return 0, err
		}
		if typ == "moov" {
			return mvhdDuration(r, payload)
		}
		if payload < 0 {
			return 0, errNoMvhd
		}
		if _, err := r.Seek(payload, io.SeekCurrent); err != nil {
			return 0, err
		}
	}
}

// readBoxHeader returns the box type, remaining payload size, and the number
// of header bytes consumed (8, or 16 for the largesize form). A payload of -1
// means the box extends to end of input (size field 0).
func readBoxHeader(r io.Reader) (string, int64, int64, error) {
	var hdr [8]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return "", 0, 0, err
	}
	size := int64(binary.BigEndian.Uint32(hdr[:4]))
	typ := string(hdr[4:8])
	switch size {
	case 0:
		return typ, -1, 8, nil
	case 1:
		var ext [8]byte
		if _, err := io.ReadFull(r, ext[:]); err != nil {
			return "", 0, 0, err
		}
		large := int64(binary.BigEndian.Uint64(ext[:]))
		if large < 16 {
			return "", 0, 0, errors.New("invalid largesize box")
		}
		return typ, large - 16, 16, nil
	default:
		if size < 8 {
			return "", 0, 0, errors.New("invalid box size")
		}
		return typ, size - 8, 8, nil
	}
}

func mvhdDuration(r io.ReadSeeker, moovPayload int64) (float64, error) {
	read := int64(0)
	for moovPayload < 0 || read < moovPayload {
		typ, payload, hdrLen, err := readBoxHeader(r)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return 0, errNoMvhd
			}
			return 0, err
		}
		if typ == "mvhd" {
			if payload < 24 {
				return 0, errors.New("truncated mvhd box")
			}
			buf := make([]byte, payload)
			if _, err := io.ReadFull(r, buf); err != nil {
				return 0, err
			}
			var timescale uint32
			var duration uint64
			if buf[0] == 1 {
				if payload < 32 {
					return 0, errors.New("truncated mvhd v1 box")
				}
				timescale = binary.BigEndian.Uint32(buf[20:24])
				duration = binary.BigEndian.Uint64(buf[24:32])
			} else {
				timescale = binary.BigEndian.Uint32(buf[12:16])
				duration = uint64(binary.BigEndian.Uint32(buf[16:20]))
			}
			if timescale == 0 {
				return 0, errors.New("mvhd timescale is zero")
			}
			return float64(duration) / float64(timescale), nil
		}
		if payload < 0 {
			return 0, errNoMvhd
		}
		if _, err := r.Seek(payload, io.SeekCurrent); err != nil {
			return 0, err
		}
		read += payload + hdrLen
	}
	return 0, errNoMvhd
}
