package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// RankingLogic names a rating algorithm. It is the discriminator of a serialized RatingConfig.
type RankingLogic string

const (
	RankingLogicModifiedElo RankingLogic = "MODIFIED_ELO"
)

// RatingConfig is the closed set of rating algorithm configurations.
// ModifiedEloConfig is the only variant.
type RatingConfig interface {
	RankingLogic() RankingLogic
	isRatingConfig()
}

// ModifiedEloConfig configures the Modified-ELO algorithm.
// AbsenteeDemerit is stored and validated but not applied when ratings are updated.
type ModifiedEloConfig struct {
	K               int
	AbsenteeDemerit int
}

func (ModifiedEloConfig) RankingLogic() RankingLogic { return RankingLogicModifiedElo }
func (ModifiedEloConfig) isRatingConfig()            {}

// ErrMalformedRatingConfig is returned when a serialized RatingConfig cannot be decoded.
var ErrMalformedRatingConfig = errors.New("malformed rating config")

type ratingConfigEnvelope struct {
	Type RankingLogic `json:"type"`
}

type modifiedEloWire struct {
	Type            RankingLogic `json:"type"`
	K               int          `json:"k"`
	AbsenteeDemerit int          `json:"absenteeDemerit"`
}

// MarshalRatingConfig encodes cfg with its "type" discriminator. A nil config encodes to nil.
func MarshalRatingConfig(cfg RatingConfig) ([]byte, error) {
	switch c := cfg.(type) {
	case nil:
		return nil, nil
	case ModifiedEloConfig:
		return json.Marshal(modifiedEloWire{
			Type:            RankingLogicModifiedElo,
			K:               c.K,
			AbsenteeDemerit: c.AbsenteeDemerit,
		})
	case *ModifiedEloConfig:
		if c == nil {
			return nil, nil
		}
		return MarshalRatingConfig(*c)
	default:
		return nil, fmt.Errorf("unsupported rating config %T", cfg)
	}
}

// UnmarshalRatingConfig decodes a RatingConfig written by MarshalRatingConfig.
// Blank input and JSON null decode to a nil config.
func UnmarshalRatingConfig(data []byte) (RatingConfig, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	var env ratingConfigEnvelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRatingConfig, err)
	}

	switch env.Type {
	case RankingLogicModifiedElo:
		var wire modifiedEloWire
		if err := json.Unmarshal(trimmed, &wire); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedRatingConfig, err)
		}
		return ModifiedEloConfig{K: wire.K, AbsenteeDemerit: wire.AbsenteeDemerit}, nil
	case "":
		return nil, fmt.Errorf("%w: missing type", ErrMalformedRatingConfig)
	default:
		return nil, fmt.Errorf("%w: unknown type %q", ErrMalformedRatingConfig, env.Type)
	}
}
