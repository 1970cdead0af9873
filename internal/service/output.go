package service

import "github.com/phrazzld/podcast-api/internal/domain"

// FailureKind classifies a failed Output so the transport can choose a
// status code without parsing the message.
type FailureKind int

const (
	KindNone FailureKind = iota
	KindNotFound
	KindConflict
	KindInvalid
	KindUnauthorized
	KindInternal
)

// String returns the name of the failure kind.
func (k FailureKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindInvalid:
		return "invalid"
	case KindUnauthorized:
		return "unauthorized"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Output is the result envelope every service operation returns.
// On failure OK is false and Error carries a stable, caller-safe message.
type Output struct {
	OK    bool        `json:"ok"`
	Error string      `json:"error,omitempty"`
	Kind  FailureKind `json:"-"`
}

func success() Output {
	return Output{OK: true}
}

func failure(kind FailureKind, message string) Output {
	return Output{Error: message, Kind: kind}
}

// IDOutput reports the identifier of a newly created entity.
type IDOutput struct {
	Output
	ID int64 `json:"id,omitempty"`
}

type PodcastOutput struct {
	Output
	Podcast *domain.Podcast `json:"podcast,omitempty"`
}

// PodcastsOutput and EpisodesOutput always serialize their list, as [] when
// there is nothing to return.
type PodcastsOutput struct {
	Output
	Podcasts []domain.Podcast `json:"podcasts"`
}

type EpisodeOutput struct {
	Output
	Episode *domain.Episode `json:"episode,omitempty"`
}

type EpisodesOutput struct {
	Output
	Episodes []domain.Episode `json:"episodes"`
}

type UserOutput struct {
	Output
	User *domain.User `json:"user,omitempty"`
}

// TokenOutput carries the identity token issued by a successful login.
type TokenOutput struct {
	Output
	Token string `json:"token,omitempty"`
}
