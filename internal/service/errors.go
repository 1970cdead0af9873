package service

import "fmt"

// Caller-facing failure messages. Clients match these literally, so they
// must not change.
const (
	MsgEmailTaken          = "There is a user with that email already"
	MsgCreateAccountFailed = "Could not create account"
	MsgLoginUserNotFound   = "User not found"
	MsgWrongPassword       = "Wrong password"
	MsgLoginFailed         = "Login is fail."
	MsgUserNotFound        = "User Not Found"
	MsgProfileUserNotFound = "user not found"
	MsgUpdateProfileFailed = "Could not update profile"

	MsgInternal           = "Internal server error occurred."
	MsgRatingOutOfRange   = "Rating must be between 1 and 5."
	msgPodcastNotFoundFmt = "Podcast with id %d not found"
	msgEpisodeNotFoundFmt = "Episode with id %d not found in podcast with id %d"
)

// PodcastNotFoundMessage is the failure message for a missing podcast.
func PodcastNotFoundMessage(podcastID int64) string {
	return fmt.Sprintf(msgPodcastNotFoundFmt, podcastID)
}

// EpisodeNotFoundMessage is the failure message for an episode missing from
// its parent podcast.
func EpisodeNotFoundMessage(podcastID, episodeID int64) string {
	return fmt.Sprintf(msgEpisodeNotFoundFmt, episodeID, podcastID)
}
