package models

// SummaryRow is the record extracted from one training log. Every field
// except LogFile and RunName is optional: a nil pointer means the
// corresponding line never appeared in the log. Numeric fields keep the
// text exactly as it was matched; only the best-accuracy selection
// compares values numerically.
type SummaryRow struct {
	RunName     string
	LogFile     string
	Model       *string
	Epochs      *string
	LR          *string
	WeightDecay *string
	AccumSteps  *string
	BestValAcc  *string
	ValMacroF1  *string
	ValMAP      *string
	TestMacroF1 *string
	TestMAP     *string
}

// SummaryColumns is the fixed header row of the summary table.
var SummaryColumns = []string{
	"run_name",
	"log_file",
	"model",
	"epochs",
	"lr",
	"weight_decay",
	"accum_steps",
	"best_val_acc",
	"val_macro_f1",
	"val_mAP",
	"test_macro_f1",
	"test_mAP",
}

// Record flattens the row into CSV field order, empty string for absent
// fields.
func (r SummaryRow) Record() []string {
	opt := func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	}
	return []string{
		r.RunName,
		r.LogFile,
		opt(r.Model),
		opt(r.Epochs),
		opt(r.LR),
		opt(r.WeightDecay),
		opt(r.AccumSteps),
		opt(r.BestValAcc),
		opt(r.ValMacroF1),
		opt(r.ValMAP),
		opt(r.TestMacroF1),
		opt(r.TestMAP),
	}
}
