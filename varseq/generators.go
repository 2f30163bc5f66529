package varseq

import (
	"math/rand/v2"
	"strconv"
	"strings"
)

const lowercase = "abcdefghijklmnopqrstuvwxyz"

// Alpha is the uppercase ASCII alphabet.
var Alpha = strings.Split("ABCDEFGHIJKLMNOPQRSTUVWXYZ", "")

// NewVarSeq returns a sequence of name+separator+index strings:
// NewVarSeq("CONST").Get(4) == "CONST_4".
func NewVarSeq(name string, opts ...Option) *Seq {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return New("VarSeq", func(n int) string {
		return name + cfg.separator + strconv.Itoa(n)
	})
}

// NewVarSeqSuffix is NewVarSeq with suffix after the index:
// NewVarSeqSuffix("u", "@email.com").Get(0) == "u_0@email.com".
func NewVarSeqSuffix(name, suffix string, opts ...Option) *Seq {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return New("VarSeqSuffix", func(n int) string {
		return name + cfg.separator + strconv.Itoa(n) + suffix
	})
}

// NewRandStrLenSeq returns a sequence of random lowercase strings of the given length.
// Values come from the process-wide math/rand/v2 source and are not reproducible.
func NewRandStrLenSeq(length int) *Seq {
	return New("RandStrLenSeq", func(int) string {
		return randString(length)
	})
}

func randString(length int) string {
	if length <= 0 {
		return ""
	}
	b := make([]byte, length)
	for i := range b {
		b[i] = lowercase[rand.IntN(len(lowercase))]
	}
	return string(b)
}
