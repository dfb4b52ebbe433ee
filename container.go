package cryptovault

import (
	"encoding/binary"
)

// Container byte layout (multi-byte integers little-endian, except version,
// which is big-endian so that version 1 is stored as the bytes 00 01):
//
//	offset  size  field
//	0       4     magic       = "CGCR"
//	4       2     version     = 0x0001 (big-endian)
//	6       1     kdf_id      = 1 (Argon2id)
//	7       1     aead_id     = 1 (ChaCha20-Poly1305)
//	8       4     mem_cost_kib
//	12      4     time_cost
//	16      4     parallelism
//	20      32    salt
//	52      12    nonce
//	64      16    tag
//	80      N     ciphertext
const (
	magicCGCR      = uint32(0x52434743) // "CGCR" read little-endian as a u32
	currentVersion = uint16(0x0001)
	kdfIDArgon2id  = uint8(1)
	aeadIDChaCha   = uint8(1)

	headerSize = 80
	aadSize    = 64 // bytes 0..64: everything up to (not including) the tag
)

// container holds the parsed fields of an on-disk encrypted artifact.
type container struct {
	version    uint16
	kdfID      uint8
	aeadID     uint8
	params     KDFParams
	salt       []byte // 32 bytes
	nonce      []byte // 12 bytes
	tag        []byte // 16 bytes
	ciphertext []byte // N bytes, same length as the original plaintext
}

// header returns the first 64 bytes of the serialized container: magic
// through nonce. This is fed to the AEAD as associated data, binding every
// parameter to the ciphertext so tampering with any of them is detected on
// decrypt even though they are not themselves encrypted.
func (c *container) header() []byte {
	buf := make([]byte, aadSize)
	binary.LittleEndian.PutUint32(buf[0:4], magicCGCR)
	binary.BigEndian.PutUint16(buf[4:6], c.version)
	buf[6] = c.kdfID
	buf[7] = c.aeadID
	binary.LittleEndian.PutUint32(buf[8:12], c.params.MemoryCostKiB)
	binary.LittleEndian.PutUint32(buf[12:16], c.params.TimeCost)
	binary.LittleEndian.PutUint32(buf[16:20], c.params.Parallelism)
	copy(buf[20:52], c.salt)
	copy(buf[52:64], c.nonce)
	return buf
}

// serialize lays out the fixed-size header followed by tag and ciphertext,
// producing the full on-disk artifact: 80 + len(ciphertext) bytes.
func (c *container) serialize() []byte {
	out := make([]byte, headerSize+len(c.ciphertext))
	copy(out[0:aadSize], c.header())
	copy(out[64:80], c.tag)
	copy(out[80:], c.ciphertext)
	return out
}

// parseContainer parses bytes into a container, validating the header
// without copying the ciphertext — the returned container's ciphertext
// field aliases the input slice from offset 80 onward.
func parseContainer(data []byte) (*container, error) {
	if len(data) < headerSize {
		return nil, ErrCorruptContainer("too short")
	}

	magic := binary.LittleEndian.Uint32(data[0:4])
	if magic != magicCGCR {
		return nil, ErrNotAContainer
	}

	version := binary.BigEndian.Uint16(data[4:6])
	if version != currentVersion {
		return nil, ErrUnsupportedVersionErr(version)
	}

	kdfID := data[6]
	aeadID := data[7]
	if kdfID != kdfIDArgon2id || aeadID != aeadIDChaCha {
		return nil, ErrUnsupportedAlgorithm
	}

	params := KDFParams{
		MemoryCostKiB: binary.LittleEndian.Uint32(data[8:12]),
		TimeCost:      binary.LittleEndian.Uint32(data[12:16]),
		Parallelism:   binary.LittleEndian.Uint32(data[16:20]),
		OutputLength:  keySize,
	}
	if err := params.Validate(); err != nil {
		return nil, ErrCorruptContainer("bad params")
	}

	c := &container{
		version:    version,
		kdfID:      kdfID,
		aeadID:     aeadID,
		params:     params,
		salt:       append([]byte(nil), data[20:52]...),
		nonce:      append([]byte(nil), data[52:64]...),
		tag:        append([]byte(nil), data[64:80]...),
		ciphertext: data[80:],
	}
	return c, nil
}
