package search

import (
	"context"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"everbloom/models"
	"everbloom/rdx"

	"github.com/redis/go-redis/v9"
)

func invertedKey(token string) string { return "inverted:" + token }

// productTokens collects every searchable field of a product.
func productTokens(p models.Product) []string {
	text := strings.Join([]string{
		p.Name, p.Type, p.FlowerType, p.Categories.Occasion, p.Categories.Fandom,
	}, " ")
	return Tokenize(text)
}

// IndexProduct adds the product id to the inverted index for each of its
// tokens. The creation time is the sort score, newest first on read.
func IndexProduct(ctx context.Context, p models.Product) error {
	score := float64(p.CreatedAt.UnixNano())
	if p.CreatedAt.IsZero() {
		score = float64(time.Now().UnixNano())
	}
	pipe := rdx.Conn.Pipeline()
	for _, t := range productTokens(p) {
		pipe.ZAdd(ctx, invertedKey(t), redis.Z{Score: score, Member: p.ProductID})
	}
	_, err := pipe.Exec(ctx)
	return err
}

// RemoveProduct drops the product id from every token set it was indexed
// under.
func RemoveProduct(ctx context.Context, p models.Product) error {
	pipe := rdx.Conn.Pipeline()
	for _, t := range productTokens(p) {
		pipe.ZRem(ctx, invertedKey(t), p.ProductID)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func idsForToken(ctx context.Context, token string) ([]string, error) {
	return rdx.Conn.ZRevRange(ctx, invertedKey(token), 0, -1).Result()
}

// GetIndexedResults intersects the id sets of every query token, smallest
// set first. All tokens must match; a token with no hits empties the result.
func GetIndexedResults(ctx context.Context, query string, limit int) ([]string, error) {
	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return nil, nil
	}

	type tokenList struct {
		ids []string
		err error
	}
	tl := make([]tokenList, len(tokens))

	var wg sync.WaitGroup
	for i, token := range tokens {
		wg.Add(1)
		go func(i int, token string) {
			defer wg.Done()
			ids, err := idsForToken(ctx, token)
			tl[i] = tokenList{ids: ids, err: err}
		}(i, token)
	}
	wg.Wait()

	for i, t := range tl {
		if t.err != nil {
			log.Printf("search: token %q: %v", tokens[i], t.err)
			return nil, t.err
		}
		if len(t.ids) == 0 {
			return nil, nil
		}
	}

	sort.Slice(tl, func(i, j int) bool { return len(tl[i].ids) < len(tl[j].ids) })
	base := tl[0].ids

	otherSets := make([]map[string]struct{}, len(tl)-1)
	for i := 1; i < len(tl); i++ {
		m := make(map[string]struct{}, len(tl[i].ids))
		for _, id := range tl[i].ids {
			m[id] = struct{}{}
		}
		otherSets[i-1] = m
	}

	out := make([]string, 0, len(base))
	for _, id := range base {
		match := true
		for _, s := range otherSets {
			if _, ok := s[id]; !ok {
				match = false
				break
			}
		}
		if match {
			out = append(out, id)
			if limit > 0 && len(out) >= limit {
				break
			}
		}
	}
	return out, nil
}
