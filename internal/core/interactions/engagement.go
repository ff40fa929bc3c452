package interactions

// Engagement is the aggregated view of a post's interactions: vote counts
// plus its comments in creation order. Counts are always derived from the
// stored records, never independently incremented.
type Engagement struct {
	Likes    int
	Dislikes int
	Comments []Interaction
}

// Activity is the total vote volume, used for most-active ranking.
func (e Engagement) Activity() int {
	return e.Likes + e.Dislikes
}

// Aggregate folds a post's interaction records into an Engagement in a single
// pass. Input order is preserved for comments, so callers that want comments
// in creation order pass records in creation order. Superseded votes are
// assumed to have been removed at write time by the store.
func Aggregate(recs []Interaction) Engagement {
	eng := Engagement{Comments: []Interaction{}}
	for _, rec := range recs {
		switch rec.Type {
		case TypeLike:
			eng.Likes++
		case TypeDislike:
			eng.Dislikes++
		case TypeComment:
			eng.Comments = append(eng.Comments, rec)
		}
	}
	return eng
}
