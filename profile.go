package cryptovault

import (
	"crypto/rand"
	"time"

	"golang.org/x/crypto/argon2"
)

// profileTable is the compile-time map from profile name to KDF cost
// parameters. It is never consulted during decryption; cost parameters then
// come from the container itself.
var profileTable = map[Profile]KDFParams{
	ProfileFast: {
		MemoryCostKiB: 4096,
		TimeCost:      1,
		Parallelism:   8,
		OutputLength:  32,
	},
	ProfileBalanced: {
		MemoryCostKiB: 65536,
		TimeCost:      3,
		Parallelism:   4,
		OutputLength:  32,
	},
	ProfileSecure: {
		MemoryCostKiB: 262144,
		TimeCost:      4,
		Parallelism:   4,
		OutputLength:  32,
	},
	ProfileParanoid: {
		MemoryCostKiB: 1048576,
		TimeCost:      10,
		Parallelism:   4,
		OutputLength:  32,
	},
}

// DefaultProfile is used whenever EncryptOptions.Profile is left unset and
// no explicit Params are given.
const DefaultProfile = ProfileBalanced

// ParamsForProfile looks up the KDF parameters for a named profile. An
// unrecognized name fails with ErrUnknownProfile.
func ParamsForProfile(name Profile) (KDFParams, error) {
	if name == "" {
		name = DefaultProfile
	}
	p, ok := profileTable[name]
	if !ok {
		return KDFParams{}, ErrUnknownProfile
	}
	return p, nil
}

// EstimateCost times a throwaway Argon2id run at the given parameters over a
// sample-sized passphrase and salt, so a caller can warn a user before
// committing to a slow profile. It derives a key and discards
// it; it never touches real passphrase material.
func EstimateCost(params KDFParams, sample int) (time.Duration, error) {
	if err := params.Validate(); err != nil {
		return 0, err
	}
	if sample <= 0 {
		sample = 16
	}
	probe := make([]byte, sample)
	if _, err := rand.Read(probe); err != nil {
		return 0, ErrRandomnessFailure
	}
	salt := make([]byte, 32)
	if _, err := rand.Read(salt); err != nil {
		return 0, ErrRandomnessFailure
	}

	start := time.Now()
	key := argon2.IDKey(probe, salt, params.TimeCost, params.MemoryCostKiB, uint8(params.Parallelism), params.OutputLength)
	elapsed := time.Since(start)
	zero(key)
	zero(probe)
	zero(salt)
	return elapsed, nil
}
