package archive

import "strings"

type Filterer struct{}

func NewFilterer() *Filterer {
	return &Filterer{}
}

// Run returns the tweets eligible for import, preserving input order. Only
// original posts survive: replies, mention-leading tweets, poll tweets and
// retweets are dropped.
func (f *Filterer) Run(tweets []Tweet) []Tweet {
	eligible := make([]Tweet, 0, len(tweets))
	for _, tweet := range tweets {
		if f.isEligible(tweet) {
			eligible = append(eligible, tweet)
		}
	}

	return eligible
}

func (f *Filterer) isEligible(tweet Tweet) bool {
	if tweet.IsReply() || tweet.IsRetweet() || tweet.HasPoll() {
		return false
	}

	return !strings.HasPrefix(tweet.FullText, "@")
}
