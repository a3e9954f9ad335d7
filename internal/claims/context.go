package claims

import (
	"github.com/apex-assurance/claims-backend/internal/directory"
	"github.com/apex-assurance/claims-backend/internal/models"
)

// Context accumulates the latest structured facts established during one
// conversation session. Each slot is overwritten, never merged. One
// Context exists per session; the Dispatcher is its only writer apart
// from the image counter.
type Context struct {
	Client            *directory.LookupResult        `json:"client,omitempty"`
	CoverageAnalysis  *models.CoverageAnalysisResult `json:"coverage_analysis,omitempty"`
	RiskAssessment    *models.RiskAssessment         `json:"risk_assessment,omitempty"`
	ExtractedEntities *models.ExtractedEntities      `json:"extracted_entities,omitempty"`
	ImagesUploaded    int                            `json:"images_uploaded"`
}

func NewContext() *Context {
	return &Context{}
}

// Reset clears every slot, returning the context to conversation-start
// state.
func (c *Context) Reset() {
	*c = Context{}
}

// AddImages bumps the running upload counter by the number of images
// attached to a turn.
func (c *Context) AddImages(n int) {
	if n > 0 {
		c.ImagesUploaded += n
	}
}

// Summary is the read-accessible digest exposed to the UI.
func (c *Context) Summary(turnCount int) map[string]any {
	return map[string]any{
		"turn_count":            turnCount,
		"claim_context":         c,
		"has_client":            c.Client != nil,
		"has_coverage_analysis": c.CoverageAnalysis != nil,
		"has_risk_assessment":   c.RiskAssessment != nil,
		"images_uploaded":       c.ImagesUploaded,
	}
}
