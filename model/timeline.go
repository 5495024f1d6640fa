package model

// Bucket holds every token discovered at one quantized time.
type Bucket struct {
	Time   float64
	Tokens []Token
}

// Timeline is a track's buckets, ascending by Time.
type Timeline struct {
	Track   int
	Buckets []Bucket
}

func (tl Timeline) NumTokens() int {
	var n int
	for _, b := range tl.Buckets {
		n += len(b.Tokens)
	}
	return n
}
