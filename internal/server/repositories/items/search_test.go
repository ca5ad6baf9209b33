package items

import (
	"strings"
	"testing"

	"github.com/dmitrijs2005/repovault/internal/common"
	"github.com/dmitrijs2005/repovault/internal/encx"
	"github.com/dmitrijs2005/repovault/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestBuildSearch_RequiresScope(t *testing.T) {
	_, _, err := buildSearch(models.ItemSearch{})
	assert.ErrorIs(t, err, common.ErrInvalidArgument)

	_, _, err = buildSearch(models.ItemSearch{Scopes: []models.SearchScope{{}}})
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
}

func TestBuildSearch_MinimalFilesOnly(t *testing.T) {
	where, args, err := buildSearch(models.ItemSearch{
		Scopes: []models.SearchScope{{Repository: 4}},
		Trash:  models.TrashEither,
	})
	require.NoError(t, err)
	assert.Equal(t, "v.is_regular_file AND ((v.repository = $1))", where)
	assert.Equal(t, []any{models.RepositoryID(4)}, args)
}

func TestBuildSearch_AllFilters(t *testing.T) {
	name := encx.Encode("Rep")
	mime := encx.Encode("image/")
	where, args, err := buildSearch(models.ItemSearch{
		Scopes: []models.SearchScope{
			{Repository: 1},
			{Repository: 2, Roots: []models.ItemID{7, 8}},
		},
		Name:      &name,
		Mimetype:  &mime,
		Timestamp: models.Int64Range{Min: ptr[int64](100), Max: ptr[int64](200)},
		Size:      models.Int64Range{Max: ptr[int64](4096)},
		Owners:    []models.UserID{3, 5},
	})
	require.NoError(t, err)

	flat := strings.Join(strings.Fields(where), " ")
	for _, want := range []string{
		"v.is_regular_file AND ((v.repository = $1) OR (v.repository = $2 AND EXISTS",
		"r.id = ANY($3::bigint[])",
		"starts_with(v.absolute_path, r.absolute_path || '/')",
		"strpos(v.name_folded, lower($4)) > 0",
		"strpos(v.mimetype_folded, lower($5)) > 0",
		"v.timestamp >= $6 AND v.timestamp <= $7",
		"v.size <= $8",
		"v.owner = ANY($9::bigint[])",
	} {
		assert.Contains(t, flat, want)
	}
	assert.True(t, strings.HasSuffix(flat, "AND NOT v.in_trash"), flat)

	assert.Equal(t, []any{
		models.RepositoryID(1),
		models.RepositoryID(2),
		[]int64{7, 8},
		"Rep",
		"image/",
		int64(100),
		int64(200),
		int64(4096),
		[]int64{3, 5},
	}, args)
}

func TestBuildSearch_TrashOnly(t *testing.T) {
	where, _, err := buildSearch(models.ItemSearch{
		Scopes: []models.SearchScope{{Repository: 1}},
		Trash:  models.TrashOnly,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(where, "AND v.in_trash"), where)
}

func TestBuildSearch_EmptyNameIgnored(t *testing.T) {
	empty := encx.EncString{}
	_, args, err := buildSearch(models.ItemSearch{
		Scopes: []models.SearchScope{{Repository: 1}},
		Name:   &empty,
	})
	require.NoError(t, err)
	assert.Len(t, args, 1)
}

func TestBuildSearch_MatchesDecodedText(t *testing.T) {
	tests := []struct {
		name  string
		query encx.EncString
		want  string
	}{
		{name: "digits never match an escape", query: encx.Encode("20"), want: "20"},
		{name: "typed percent is a literal", query: encx.Encode("%"), want: "%"},
		{name: "space is searched decoded", query: encx.MustParse("my%20report"), want: "my report"},
		{name: "non-ascii is searched decoded", query: encx.Encode("Été"), want: "Été"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.query
			where, args, err := buildSearch(models.ItemSearch{
				Scopes:   []models.SearchScope{{Repository: 1}},
				Name:     &q,
				Mimetype: &q,
			})
			require.NoError(t, err)

			assert.Contains(t, where, "strpos(v.name_folded, lower($2)) > 0")
			assert.Contains(t, where, "strpos(v.mimetype_folded, lower($3)) > 0")
			assert.Equal(t, []any{models.RepositoryID(1), tt.want, tt.want}, args)
		})
	}
}
