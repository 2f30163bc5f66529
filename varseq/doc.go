// Package varseq generates collision-free strings for test data.
//
// Seq is a lazily growing list: reading an index past its end generates and
// caches every element up to it, so repeated reads return the same string.
// NewVarSeq, NewVarSeqSuffix and NewRandStrLenSeq build the common sequences.
// VarPrefix caches prefixed names and PosArgs builds positional argument lists.
package varseq
