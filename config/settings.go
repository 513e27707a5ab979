package config

// Store key namespacing. Document and session keys never collide across
// users because the identifier is appended to a fixed prefix.
const (
	DataKeyPrefix    = "agency_builder_data_v1_"
	SessionKeyPrefix = "agency_builder_session_"
)

// Session tokens are signed with SESSION_SECRET and expire after this many
// hours. The journaling data itself is keyed by email and survives logout.
const SessionTTLHours = 24 * 30
