// Package catalog lists every algorithm the harness measures, in report
// order. Adding an algorithm means adding one entry to algorithms.
package catalog

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"hash"
	"hash/adler32"
	"hash/crc64"
	"hashbench/digest"
	"hashbench/errutil"
	"hashbench/harness"
	"hashbench/utils"

	onexxhash "github.com/OneOfOne/xxhash"
	"github.com/cespare/xxhash/v2"
	"github.com/dchest/siphash"
	"github.com/klauspost/crc32"
	"github.com/minio/crc64nvme"
	"github.com/minio/highwayhash"
	sha256simd "github.com/minio/sha256-simd"
	"github.com/segmentio/fasthash/fnv1a"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/md4"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
	"golang.org/x/exp/slices"
)

var (
	castagnoli = crc32.MakeTable(crc32.Castagnoli)
	crc64ISO   = crc64.MakeTable(crc64.ISO)
	crc64ECMA  = crc64.MakeTable(crc64.ECMA)
)

var algorithms = []harness.Algorithm{
	// Cryptographic digests, fed through hash.Hash.
	harness.NewDigest("md5", md5.New),
	harness.NewDigest("md4", md4.New),
	harness.NewDigest("ripemd160", ripemd160.New),
	harness.NewDigest("sha1", sha1.New),
	harness.NewDigest("sha224", sha256.New224),
	harness.NewDigest("sha256", sha256.New),
	harness.NewDigest("sha256_simd", sha256simd.New),
	harness.NewDigest("sha384", sha512.New384),
	harness.NewDigest("sha512", sha512.New),
	harness.NewDigest("sha512_224", sha512.New512_224),
	harness.NewDigest("sha512_256", sha512.New512_256),
	harness.NewDigest("sha3_224", sha3.New224),
	harness.NewDigest("sha3_256", sha3.New256),
	harness.NewDigest("sha3_384", sha3.New384),
	harness.NewDigest("sha3_512", sha3.New512),
	harness.NewDigest("keccak256", sha3.NewLegacyKeccak256),
	harness.NewDigest("keccak512", sha3.NewLegacyKeccak512),
	harness.NewDigest("blake2b_256", unkeyed(blake2b.New256)),
	harness.NewDigest("blake2b_512", unkeyed(blake2b.New512)),
	harness.NewDigest("blake2s_256", unkeyed(blake2s.New256)),
	harness.NewDigest("blake3", blake3.New),
	harness.NewDigest("crc64nvme", crc64nvme.New),
	harness.NewDigest("xxhash64_digest", xxhash.New),

	// Checksums.
	harness.NewSlice("crc32_ieee", func(d []byte, _ uint32) uint32 { return crc32.ChecksumIEEE(d) }),
	harness.NewSlice("crc32_castagnoli", func(d []byte, _ uint32) uint32 { return crc32.Checksum(d, castagnoli) }),
	harness.NewSlice("crc64_iso", func(d []byte, _ uint32) uint64 { return crc64.Checksum(d, crc64ISO) }),
	harness.NewSlice("crc64_ecma", func(d []byte, _ uint32) uint64 { return crc64.Checksum(d, crc64ECMA) }),
	harness.NewSlice("adler32", func(d []byte, _ uint32) uint32 { return adler32.Checksum(d) }),

	// Non-cryptographic hashes.
	harness.NewSlice("fnv1a_32", func(d []byte, _ uint32) uint32 { return fnv1a.HashBytes32(d) }),
	harness.NewSlice("fnv1a_64", func(d []byte, _ uint32) uint64 { return fnv1a.HashBytes64(d) }),
	harness.NewSlice("xxhash64", func(d []byte, _ uint32) uint64 { return xxhash.Sum64(d) }),
	harness.NewSlice("xxh32", onexxhash.Checksum32S),
	harness.NewSlice("xxh64", onexxhash.Checksum64S),
	harness.NewSlice("xxh3_64", func(d []byte, _ uint32) uint64 { return xxh3.Hash(d) }),
	harness.NewSlice("xxh3_64_with_seed", xxh3.HashSeed),
	harness.NewSlice("xxh3_128_with_seed", xxh3Hash128Seed),
	harness.NewSlice("murmur3_32_of_slice", murmur3.Sum32WithSeed),
	harness.NewSlice("murmur3_x64_64_of_slice", murmur3.Sum64WithSeed),
	harness.NewSlice("murmur3_x64_128_of_slice", murmur3Sum128),
	harness.NewSlice("siphash_2_4", func(d []byte, seed uint64) uint64 { return siphash.Hash(seed, 0, d) }),
	harness.NewSlice("siphash_2_4_128", siphash128),
	harness.NewSlice("highwayhash_64", func(d []byte, seed uint32) uint64 { return highwayhash.Sum64(d, seedKey(seed)) }),

	// Functions that return an already formatted digest.
	harness.NewSliceString("sha256_hex", sha256Hex),
	harness.NewSliceString("blake3_256_hex", blake3Hex),

	// Streaming functions over a cursor.
	harness.NewCursor("murmur3_32", murmur3Stream32),
	harness.NewCursor("murmur3_x64_128", murmur3Stream128),
	harness.NewCursor("xxh3_64_stream", xxh3Stream),
	harness.NewCursor("highwayhash_64_keyed_stream", highwayKeyedStream),
}

// All returns the catalog in declaration order. The slice is a copy and
// may be modified by the caller.
func All() []harness.Algorithm {
	return slices.Clone(algorithms)
}

func Names() []string {
	return utils.Map(algorithms, func(a harness.Algorithm) string { return a.Name })
}

// RunSuite measures every catalog entry once at (size, seed).
func RunSuite(size int, seed uint32) []harness.Stat {
	return harness.RunSuite(algorithms, size, seed)
}

func unkeyed(newKeyed func(key []byte) (hash.Hash, error)) func() hash.Hash {
	return func() hash.Hash {
		h, err := newKeyed(nil)
		errutil.FatalIf(err)
		return h
	}
}

func xxh3Hash128Seed(d []byte, seed uint64) digest.Uint128 {
	u := xxh3.Hash128Seed(d, seed)
	return digest.Uint128{Hi: u.Hi, Lo: u.Lo}
}

func murmur3Sum128(d []byte, seed uint32) digest.Uint128 {
	h1, h2 := murmur3.Sum128WithSeed(d, seed)
	return digest.Uint128{Hi: h1, Lo: h2}
}

func siphash128(d []byte, seed uint64) digest.Uint128 {
	hi, lo := siphash.Hash128(seed, 0, d)
	return digest.Uint128{Hi: hi, Lo: lo}
}

func sha256Hex(d []byte, _ uint32) string {
	sum := sha256simd.Sum256(d)
	return hex.EncodeToString(sum[:])
}

func blake3Hex(d []byte, _ uint32) string {
	sum := blake3.Sum256(d)
	return hex.EncodeToString(sum[:])
}
