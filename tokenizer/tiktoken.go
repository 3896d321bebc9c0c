package tokenizer

import (
	"fmt"
	"strings"

	"github.com/pkoukk/tiktoken-go"
)

// DefaultModel is the model hint assumed when none is given.
const DefaultModel = "gpt-4o-mini"

// DefaultEncoding is the fixed encoding of the secondary tier.
const DefaultEncoding = "cl100k_base"

// bpeHandle wraps a tiktoken encoding as a tier handle.
type bpeHandle struct {
	tier     Tier
	encoding string
	enc      *tiktoken.Tiktoken
}

func (h *bpeHandle) EstimateTokenCount(text string) (int, error) {
	return len(h.enc.Encode(text, nil, nil)), nil
}

func (h *bpeHandle) Tier() Tier { return h.tier }

func (h *bpeHandle) Encoding() string { return h.encoding }

// newPrimaryHandle loads the encoding matched to the hint. The hint may be
// a model name ("gpt-4o-mini") or an encoding name ("o200k_base").
func newPrimaryHandle(hint string) (Handle, error) {
	if hint == "" {
		hint = DefaultModel
	}
	if enc, err := tiktoken.EncodingForModel(hint); err == nil {
		return &bpeHandle{tier: TierPrimary, encoding: encodingNameForModel(hint), enc: enc}, nil
	}
	enc, err := tiktoken.GetEncoding(hint)
	if err != nil {
		return nil, &LoadError{Tier: TierPrimary, Hint: hint, Err: fmt.Errorf("no encoding for hint: %w", err)}
	}
	return &bpeHandle{tier: TierPrimary, encoding: hint, enc: enc}, nil
}

// newSecondaryHandle loads the fixed default encoding.
func newSecondaryHandle() (Handle, error) {
	enc, err := tiktoken.GetEncoding(DefaultEncoding)
	if err != nil {
		return nil, &LoadError{Tier: TierSecondary, Err: err}
	}
	return &bpeHandle{tier: TierSecondary, encoding: DefaultEncoding, enc: enc}, nil
}

// encodingNameForModel resolves the encoding name behind a model hint,
// including prefix matches ("gpt-4o" covers "gpt-4o-mini").
func encodingNameForModel(model string) string {
	if name, ok := tiktoken.MODEL_TO_ENCODING[model]; ok {
		return name
	}
	for prefix, name := range tiktoken.MODEL_PREFIX_TO_ENCODING {
		if strings.HasPrefix(model, prefix) {
			return name
		}
	}
	return model
}
