package constants

// Intake flows. The value is stored in intake_records.intake_record_flow and
// step_templates.step_template_flow; the path segment is what the API uses.
const (
	FlowInfoSession = "info_session"
	FlowOrientation = "orientation"

	PathSessions     = "sessions"
	PathOrientations = "orientations"
)

const (
	SessionTypeNewHire      = "new-hire"
	SessionTypeReactivation = "reactivation"
)

var Flows = []string{FlowInfoSession, FlowOrientation}

// FlowFromPath resolves the {flow} path segment.
func FlowFromPath(segment string) (string, bool) {
	switch segment {
	case PathSessions, FlowInfoSession:
		return FlowInfoSession, true
	case PathOrientations, FlowOrientation:
		return FlowOrientation, true
	}
	return "", false
}

func IsValidFlow(flow string) bool {
	return flow == FlowInfoSession || flow == FlowOrientation
}

func IsValidSessionType(t string) bool {
	return t == SessionTypeNewHire || t == SessionTypeReactivation
}

const (
	AvailabilityAvailable = "available"
	AvailabilityBusy      = "busy"
)
