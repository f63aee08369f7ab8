package domain

// VisionConnection links a task to the user's higher-purpose narrative.
// It is produced by a deterministic keyword lookup over the task's title
// and description (see internal/vision), never by real inference.
type VisionConnection struct {
	// CoreVisionRelevance describes how the task serves the user's vision.
	CoreVisionRelevance string `json:"core_vision_relevance,omitempty" yaml:"core_vision_relevance"`

	// ValueAlignment lists the personal value tags the task touches.
	ValueAlignment []string `json:"value_alignment,omitempty" yaml:"value_alignment"`

	// ImpactScore is the connection's contribution to the task's impact
	// score, 0-10.
	ImpactScore int `json:"impact_score" yaml:"impact_score"`

	// WhyStatement is a short motivational sentence for the task.
	WhyStatement string `json:"why_statement,omitempty" yaml:"why_statement"`
}
