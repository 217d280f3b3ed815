// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package score

import (
	"os"
	"slices"

	"github.com/pkg/errors"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/rider-engine/pkg/types"
)

// LoadProfile reads a scoring profile from a YAML file. Fields the file
// leaves out keep their default values.
func LoadProfile(path string) (profile types.Profile, err error) {
	profile = types.DefaultProfile()

	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read profile: %s", path)
		return profile, err
	}

	err = yaml.Unmarshal(data, &profile)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse profile: %s", path)
		return profile, err
	}

	err = ValidateProfile(profile)
	if err != nil {
		err = errors.Wrapf(err, "invalid profile: %s", path)
		return profile, err
	}
	return profile, err
}

// ValidateProfile checks that every weight names a known rule, no weight
// is negative, and the thresholds are ordered sensibly.
func ValidateProfile(p types.Profile) error {
	for name, w := range p.Weights {
		if !slices.Contains(types.RuleOrder, name) {
			return errors.Errorf("unknown rule %q in weights", name)
		}
		if w < 0 {
			return errors.Errorf("negative weight %d for rule %q", w, name)
		}
	}
	th := p.Thresholds
	if th.MaybeRiderConfidence > th.RiderConfidence {
		return errors.New("maybe_rider_confidence must not exceed rider_confidence")
	}
	if th.MaxFileBytes > th.LargeFileBytes {
		return errors.New("max_file_bytes must not exceed large_file_bytes")
	}
	if th.CompressionFactor < 0 || th.CompressionFactor > 1 {
		return errors.Errorf("compression_factor %.2f outside [0,1]", th.CompressionFactor)
	}
	return nil
}
