package snapshot

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"

	"github.com/edsrzf/mmap-go"

	"web/pinmap/cluster"
)

// mmapWriter appends fixed-layout records into a memory-mapped region.
type mmapWriter struct {
	data   mmap.MMap
	offset int
}

func (w *mmapWriter) writeUint32(v uint32) {
	binary.LittleEndian.PutUint32(w.data[w.offset:], v)
	w.offset += 4
}

func (w *mmapWriter) writeFloat64(v float64) {
	binary.LittleEndian.PutUint64(w.data[w.offset:], math.Float64bits(v))
	w.offset += 8
}

func (w *mmapWriter) writeString(s string) {
	w.writeUint32(uint32(len(s)))
	copy(w.data[w.offset:], s)
	w.offset += len(s)
}

// mmapReader walks a memory-mapped region with bounds checks so a
// truncated or corrupt file surfaces as an error, not a panic.
type mmapReader struct {
	data   mmap.MMap
	offset int
}

func (r *mmapReader) readUint32() (uint32, error) {
	if r.offset+4 > len(r.data) {
		return 0, fmt.Errorf("snapshot truncated at offset %d", r.offset)
	}
	v := binary.LittleEndian.Uint32(r.data[r.offset:])
	r.offset += 4
	return v, nil
}

func (r *mmapReader) readFloat64() (float64, error) {
	if r.offset+8 > len(r.data) {
		return 0, fmt.Errorf("snapshot truncated at offset %d", r.offset)
	}
	v := binary.LittleEndian.Uint64(r.data[r.offset:])
	r.offset += 8
	return math.Float64frombits(v), nil
}

func (r *mmapReader) readString() (string, error) {
	n, err := r.readUint32()
	if err != nil {
		return "", err
	}
	if r.offset+int(n) > len(r.data) {
		return "", fmt.Errorf("snapshot truncated at offset %d", r.offset)
	}
	s := string(r.data[r.offset : r.offset+int(n)])
	r.offset += int(n)
	return s, nil
}

// mmapSize is the exact byte size of the uncompressed snapshot layout.
func mmapSize(points []cluster.GeoPoint) int64 {
	size := int64(headerSize)
	for i := range points {
		size += pointFixedSize
		size += int64(len(points[i].ID) + len(points[i].DisplayName) + len(points[i].Status))
	}
	return size
}

// SaveMMap writes points to an uncompressed memory-mapped snapshot.
// Same record layout as Save minus the zstd framing, for inventories
// that are re-read often enough that page-cache sharing beats the
// decompression.
func SaveMMap(filename string, points []cluster.GeoPoint) error {
	size := mmapSize(points)

	file, err := os.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create snapshot file: %w", err)
	}
	defer file.Close()

	if err := file.Truncate(size); err != nil {
		return fmt.Errorf("failed to truncate file: %w", err)
	}

	data, err := mmap.Map(file, mmap.RDWR, 0)
	if err != nil {
		return fmt.Errorf("failed to mmap file: %w", err)
	}
	defer data.Unmap()

	w := &mmapWriter{data: data}
	w.writeUint32(magic)
	w.writeUint32(version)
	w.writeUint32(uint32(len(points)))
	for i := range points {
		p := &points[i]
		w.writeString(p.ID)
		w.writeString(p.DisplayName)
		w.writeString(string(p.Status))
		w.writeFloat64(p.Latitude)
		w.writeFloat64(p.Longitude)
	}

	return data.Flush()
}

// LoadMMap reads an uncompressed snapshot written by SaveMMap.
func LoadMMap(filename string) ([]cluster.GeoPoint, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot file: %w", err)
	}
	defer file.Close()

	data, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to mmap file: %w", err)
	}
	defer data.Unmap()

	r := &mmapReader{data: data}
	m, err := r.readUint32()
	if err != nil {
		return nil, err
	}
	if m != magic {
		return nil, fmt.Errorf("not a fleet snapshot (magic %#x)", m)
	}
	v, err := r.readUint32()
	if err != nil {
		return nil, err
	}
	if v != version {
		return nil, fmt.Errorf("unsupported snapshot version %d", v)
	}
	count, err := r.readUint32()
	if err != nil {
		return nil, err
	}

	points := make([]cluster.GeoPoint, count)
	for i := range points {
		p := &points[i]
		if p.ID, err = r.readString(); err != nil {
			return nil, fmt.Errorf("failed to read point %d: %w", i, err)
		}
		if p.DisplayName, err = r.readString(); err != nil {
			return nil, fmt.Errorf("failed to read point %d: %w", i, err)
		}
		status, err := r.readString()
		if err != nil {
			return nil, fmt.Errorf("failed to read point %d: %w", i, err)
		}
		p.Status = cluster.ParseStatusTag(status)
		if p.Latitude, err = r.readFloat64(); err != nil {
			return nil, fmt.Errorf("failed to read point %d: %w", i, err)
		}
		if p.Longitude, err = r.readFloat64(); err != nil {
			return nil, fmt.Errorf("failed to read point %d: %w", i, err)
		}
	}
	return points, nil
}
