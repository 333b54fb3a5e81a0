package logic

// Page size requested when nothing is stored yet for an account.
const bootstrapFetchCount = 100

// FetchParams is what a timeline request asks the remote API for.
// Zero SinceId means no cursor; zero Count means no explicit count.
type FetchParams struct {
	SinceId        uint64
	Count          int
	ExcludeReplies bool
}

// PlanFetch asks only for posts newer than the last stored one; with nothing
// stored (lastKnownId == 0) it asks for a bootstrap page instead. Replies are never requested.
func PlanFetch(lastKnownId uint64) FetchParams {
	if lastKnownId != 0 {
		return FetchParams{SinceId: lastKnownId, ExcludeReplies: true}
	}
	return FetchParams{Count: bootstrapFetchCount, ExcludeReplies: true}
}
