package templatest

import "github.com/skosovsky/templatest/varseq"

// fixture stands in for a provider type declared under the given identifier.
type fixture struct {
	id       string
	template string
	expected string
}

func (f fixture) Identifier() string { return f.id }
func (f fixture) Template() string   { return f.template }
func (f fixture) Expected() string   { return f.expected }

var (
	testClassName      = varseq.NewVarSeq("_TestTemplate")
	testErrClassName   = varseq.NewVarSeq("_ErrTestTemplate")
	testMultiClassName = varseq.NewVarSeq("_MultiTestTemplate")
	testInstName       = varseq.NewVarSeq("test-template", varseq.WithSeparator("-"))
	testErrInstName    = varseq.NewVarSeq("err-test-template", varseq.WithSeparator("-"))
	testMultiInstName  = varseq.NewVarSeq("multi-test-template", varseq.WithSeparator("-"))
)

const (
	groupTest  = "test"
	groupErr   = "err"
	groupMulti = "multi"
)

// registerAll adds three fixtures per identifier sequence to r.
func registerAll(r *Registered, seqs ...*varseq.Seq) error {
	for _, s := range seqs {
		for i := range 3 {
			if err := r.Register(fixture{id: s.Get(i)}); err != nil {
				return err
			}
		}
	}
	return nil
}

// Generate the names up front so parallel tests only read the sequences.
func init() {
	for _, s := range []*varseq.Seq{
		testClassName, testErrClassName, testMultiClassName,
		testInstName, testErrInstName, testMultiInstName,
	} {
		s.Get(9)
	}
}
