// Package snapshot persists fleet point sets as compressed binary
// snapshots. It stores engine inputs only — asset inventories and test
// fixtures. Clustered output is recomputed per viewport and never
// touches disk.
package snapshot

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/sirupsen/logrus"

	"web/pinmap/cluster"
)

const (
	magic   uint32 = 0x50534E50 // "PSNP"
	version uint32 = 1

	// pointFixedSize is the non-string payload per record: two float64
	// coordinates plus three string length prefixes.
	pointFixedSize = 16 + 12
	headerSize     = 12
)

// Save writes points to filename as a zstd-compressed snapshot.
func Save(filename string, points []cluster.GeoPoint) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create snapshot file: %w", err)
	}
	defer file.Close()

	bufWriter := bufio.NewWriterSize(file, 1024*1024)
	enc, err := zstd.NewWriter(bufWriter,
		zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return fmt.Errorf("failed to create zstd writer: %w", err)
	}

	if err := writePoints(enc, points); err != nil {
		enc.Close()
		return err
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to close encoder: %w", err)
	}
	if err := bufWriter.Flush(); err != nil {
		return fmt.Errorf("failed to flush buffer: %w", err)
	}
	return nil
}

// Load reads a zstd-compressed snapshot written by Save.
func Load(filename string) ([]cluster.GeoPoint, error) {
	start := time.Now()
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot file: %w", err)
	}
	defer file.Close()

	dec, err := zstd.NewReader(bufio.NewReaderSize(file, 1024*1024))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %w", err)
	}
	defer dec.Close()

	points, err := readPoints(dec)
	if err != nil {
		return nil, err
	}

	logrus.Debugf("Loaded %d points from %s in %v", len(points), filename, time.Since(start))
	return points, nil
}

func writePoints(w io.Writer, points []cluster.GeoPoint) error {
	if err := binary.Write(w, binary.LittleEndian, magic); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, version); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(points))); err != nil {
		return fmt.Errorf("failed to write point count: %w", err)
	}

	for i := range points {
		if err := writePoint(w, &points[i]); err != nil {
			return fmt.Errorf("failed to write point %d: %w", i, err)
		}
	}
	return nil
}

func readPoints(r io.Reader) ([]cluster.GeoPoint, error) {
	var m, v, count uint32
	if err := binary.Read(r, binary.LittleEndian, &m); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if m != magic {
		return nil, fmt.Errorf("not a fleet snapshot (magic %#x)", m)
	}
	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if v != version {
		return nil, fmt.Errorf("unsupported snapshot version %d", v)
	}
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("failed to read point count: %w", err)
	}

	points := make([]cluster.GeoPoint, count)
	for i := range points {
		if err := readPoint(r, &points[i]); err != nil {
			return nil, fmt.Errorf("failed to read point %d: %w", i, err)
		}
	}
	return points, nil
}

func writePoint(w io.Writer, p *cluster.GeoPoint) error {
	if err := writeString(w, p.ID); err != nil {
		return err
	}
	if err := writeString(w, p.DisplayName); err != nil {
		return err
	}
	if err := writeString(w, string(p.Status)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, p.Latitude); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, p.Longitude)
}

func readPoint(r io.Reader, p *cluster.GeoPoint) error {
	id, err := readString(r)
	if err != nil {
		return err
	}
	name, err := readString(r)
	if err != nil {
		return err
	}
	status, err := readString(r)
	if err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &p.Latitude); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &p.Longitude); err != nil {
		return err
	}

	p.ID = id
	p.DisplayName = name
	// Statuses written by older producers may predate the tag set;
	// parsing keeps them as the unknown variant instead of erroring.
	p.Status = cluster.ParseStatusTag(status)
	return nil
}

func writeString(w io.Writer, s string) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(s))); err != nil {
		return err
	}
	_, err := w.Write([]byte(s))
	return err
}

func readString(r io.Reader) (string, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}
