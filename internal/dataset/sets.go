package dataset

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"

	"wordpractice/internal/models"
)

// DefaultChunkSize is the number of words per set when the dataset has
// no grouping column.
const DefaultChunkSize = 10

// ErrNoSets means the loader produced zero sets. Fatal to the view.
var ErrNoSets = errors.New("no word sets found in dataset")

var setDigits = regexp.MustCompile(`\d+`)

// BuildSets turns loaded rows into ordered, named word sets. With
// grouped true, rows are grouped by their Set value and the groups are
// ordered by the first run of digits in each name ("Set 2" before
// "Set 10"). Without grouping, rows are partitioned into consecutive
// chunks of chunkSize named "Set 1", "Set 2", and so on.
func BuildSets(items []models.WordItem, grouped bool, chunkSize int) ([]*models.WordSet, error) {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	var sets []*models.WordSet
	if grouped {
		sets = groupSets(items)
	} else {
		sets = chunkSets(items, chunkSize)
	}

	if len(sets) == 0 {
		return nil, ErrNoSets
	}
	return sets, nil
}

// groupSets groups rows by their Set value, preserving row order within
// each group and encounter order between groups with equal sort keys.
func groupSets(items []models.WordItem) []*models.WordSet {
	byName := make(map[string]*models.WordSet)
	var sets []*models.WordSet
	for _, item := range items {
		set, ok := byName[item.Set]
		if !ok {
			set = &models.WordSet{Name: item.Set}
			byName[item.Set] = set
			sets = append(sets, set)
		}
		set.Items = append(set.Items, item)
	}

	// Numeric order by the first digit run in the name; names without
	// digits collectively sort last, keeping their encounter order.
	sort.SliceStable(sets, func(i, j int) bool {
		ni, iok := setSortKey(sets[i].Name)
		nj, jok := setSortKey(sets[j].Name)
		if iok && jok {
			return ni < nj
		}
		return iok && !jok
	})

	return sets
}

func setSortKey(name string) (int, bool) {
	digits := setDigits.FindString(name)
	if digits == "" {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}

func chunkSets(items []models.WordItem, size int) []*models.WordSet {
	var sets []*models.WordSet
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		sets = append(sets, &models.WordSet{
			Name:  fmt.Sprintf("Set %d", len(sets)+1),
			Items: append([]models.WordItem(nil), items[start:end]...),
		})
	}
	return sets
}
