package textscan

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vippsas/textscan/textreader"
	"golang.org/x/sync/errgroup"
)

func TestSyncScanner(t *testing.T) {
	var words []string
	for i := 0; i < 1000; i++ {
		words = append(words, strconv.Itoa(i))
	}
	s := NewSyncScanner(textreader.NewScanner(strings.Join(words, " ")))

	var mu sync.Mutex
	var got []string
	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			for {
				tok, ok := s.GetNext(textreader.Word())
				if !ok {
					return nil
				}
				mu.Lock()
				got = append(got, tok.Text)
				mu.Unlock()
			}
		})
	}
	require.NoError(t, g.Wait())

	assert.True(t, s.Exhausted())
	assert.Equal(t, "", s.Remaining())
	sort.Strings(words)
	sort.Strings(got)
	assert.Equal(t, words, got)
}
