package domain

// Topic is one of the fixed content categories. The cache and dispatcher
// accept arbitrary strings so unknown topics degrade to empty results.
type Topic string

// known topics
const (
	TopicAfisha Topic = "afisha"
	TopicSeries Topic = "series"
	TopicMovies Topic = "movies"
	TopicAgro   Topic = "agro"
	TopicSVO    Topic = "svo"
	TopicAI     Topic = "ai"
)

// Topics lists all known topics in presentation order.
func Topics() []Topic {
	return []Topic{TopicAfisha, TopicSeries, TopicMovies, TopicAgro, TopicSVO, TopicAI}
}
