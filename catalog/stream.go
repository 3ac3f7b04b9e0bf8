package catalog

import (
	"encoding/binary"
	"hashbench/digest"
	"hashbench/input"
	"io"

	"github.com/minio/highwayhash"
	"github.com/pkg/errors"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
)

const highwayKeySize = 32

// seedKey expands a harness seed into a HighwayHash key.
func seedKey(seed uint32) []byte {
	key := make([]byte, highwayKeySize)
	binary.LittleEndian.PutUint32(key, seed)
	return key
}

func murmur3Stream32(c *input.Cursor, seed uint32) (uint32, error) {
	h := murmur3.New32WithSeed(seed)
	if _, err := io.Copy(h, c); err != nil {
		return 0, errors.Wrap(err, "murmur3_32 stream")
	}
	return h.Sum32(), nil
}

func murmur3Stream128(c *input.Cursor, seed uint32) (digest.Uint128, error) {
	h := murmur3.New128WithSeed(seed)
	if _, err := io.Copy(h, c); err != nil {
		return digest.Uint128{}, errors.Wrap(err, "murmur3_x64_128 stream")
	}
	h1, h2 := h.Sum128()
	return digest.Uint128{Hi: h1, Lo: h2}, nil
}

func xxh3Stream(c *input.Cursor, _ uint64) (uint64, error) {
	h := xxh3.New()
	if _, err := io.Copy(h, c); err != nil {
		return 0, errors.Wrap(err, "xxh3 stream")
	}
	return h.Sum64(), nil
}

// highwayKeyedStream reads its 32-byte key from the head of the stream and
// hashes the remainder. Streams shorter than the key fail.
func highwayKeyedStream(c *input.Cursor, _ uint32) (uint64, error) {
	key := make([]byte, highwayKeySize)
	if _, err := io.ReadFull(c, key); err != nil {
		return 0, errors.Wrapf(err, "read %d-byte key at offset %d", highwayKeySize, c.Position())
	}
	h, err := highwayhash.New64(key)
	if err != nil {
		return 0, errors.Wrap(err, "highwayhash key")
	}
	if _, err := io.Copy(h, c); err != nil {
		return 0, errors.Wrap(err, "highwayhash stream")
	}
	return h.Sum64(), nil
}
