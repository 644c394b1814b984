package engine

// ProgressReporter shows loading progress. Fraction runs from 0 to 1.
type ProgressReporter interface {
	SetProgress(fraction float32, text string)
}

// NopProgress discards progress updates.
type NopProgress struct{}

func (NopProgress) SetProgress(float32, string) {}

// Progress checkpoints of a scene build.
const (
	ProgressStart   float32 = 0.05
	ProgressParsed  float32 = 0.10
	ProgressMusic   float32 = 0.15
	ProgressTerrain float32 = 0.20
	ProgressObjects float32 = 0.25
	ProgressDone    float32 = 1.00
)

// ObjectProgress is the fraction reached after rank of total objects.
func ObjectProgress(rank, total int) float32 {
	if total <= 0 {
		return ProgressObjects
	}
	return ProgressObjects + 0.75*float32(rank)/float32(total)
}
