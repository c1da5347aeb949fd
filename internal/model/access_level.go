package model

type AccessLevel int

const (
	AccessViewer      AccessLevel = 0
	AccessFollower    AccessLevel = 10
	AccessSubscriber  AccessLevel = 20
	AccessVIP         AccessLevel = 30
	AccessModerator   AccessLevel = 40
	AccessBroadcaster AccessLevel = 50
)

func (l AccessLevel) String() string {
	switch l {
	case AccessViewer:
		return "viewer"
	case AccessFollower:
		return "follower"
	case AccessSubscriber:
		return "subscriber"
	case AccessVIP:
		return "vip"
	case AccessModerator:
		return "moderator"
	case AccessBroadcaster:
		return "broadcaster"
	}
	return "unknown"
}
