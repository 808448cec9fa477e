package valueobjects

// Stage is the temporal phase of an event derived from its status and
// schedule. It is never persisted.
type Stage string

const (
	StageDraft    Stage = "DRAFT"
	StagePreview  Stage = "PREVIEW"
	StageOnSale   Stage = "ONSALE"
	StageLive     Stage = "LIVE"
	StageEnded    Stage = "ENDED"
	StageDisabled Stage = "DISABLED"
)

func (s Stage) String() string {
	return string(s)
}
