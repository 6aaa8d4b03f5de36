package similarity

import (
	"math"
	"strings"
	"unicode"
)

// Oracle scores how close a candidate title is to titles a user liked before.
// It builds TF-IDF vectors over the combined corpus (liked titles plus the
// candidate) and returns the maximum pairwise cosine similarity, in [0, 1].
type Oracle struct{}

// NewOracle creates a title similarity oracle
func NewOracle() *Oracle {
	return &Oracle{}
}

// MaxSimilarity returns the highest cosine similarity between the candidate
// title and any of the liked titles. An empty liked list or a candidate with
// no usable terms yields 0.0, never an error.
func (o *Oracle) MaxSimilarity(title string, likedTitles []string) float64 {
	if len(likedTitles) == 0 {
		return 0.0
	}

	candidate := tokenize(title)
	if len(candidate) == 0 {
		return 0.0
	}

	docs := make([][]string, 0, len(likedTitles)+1)
	for _, liked := range likedTitles {
		docs = append(docs, tokenize(liked))
	}
	docs = append(docs, candidate)

	idf := inverseDocFrequency(docs)
	candidateVec := tfidfVector(candidate, idf)

	best := 0.0
	for _, doc := range docs[:len(docs)-1] {
		if sim := cosine(candidateVec, tfidfVector(doc, idf)); sim > best {
			best = sim
		}
	}

	// clamp float noise
	if best > 1.0 {
		best = 1.0
	}
	return best
}

// tokenize lowercases and splits on non-alphanumeric runes, dropping english
// stop-words and single characters
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		if len(field) < 2 {
			continue
		}
		if _, stop := stopWords[field]; stop {
			continue
		}
		tokens = append(tokens, field)
	}
	return tokens
}

// inverseDocFrequency computes smoothed IDF per term across the documents
func inverseDocFrequency(docs [][]string) map[string]float64 {
	docCount := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{}, len(doc))
		for _, term := range doc {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			docCount[term]++
		}
	}

	total := float64(len(docs))
	idf := make(map[string]float64, len(docCount))
	for term, count := range docCount {
		// smoothed variant, keeps terms present in every document non-zero
		idf[term] = math.Log((1+total)/(1+float64(count))) + 1
	}
	return idf
}

// tfidfVector builds a normalized term-frequency vector scaled by IDF
func tfidfVector(doc []string, idf map[string]float64) map[string]float64 {
	if len(doc) == 0 {
		return nil
	}

	freq := make(map[string]int, len(doc))
	for _, term := range doc {
		freq[term]++
	}

	vec := make(map[string]float64, len(freq))
	for term, count := range freq {
		vec[term] = float64(count) * idf[term]
	}
	return vec
}

// cosine computes cosine similarity between two sparse vectors
func cosine(a, b map[string]float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	var dot, normA, normB float64
	for term, weightA := range a {
		normA += weightA * weightA
		if weightB, ok := b[term]; ok {
			dot += weightA * weightB
		}
	}
	for _, weightB := range b {
		normB += weightB * weightB
	}

	if dot == 0 || normA == 0 || normB == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
