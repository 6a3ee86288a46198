package repositoryImp

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"churnpredict/database"
	"churnpredict/entities"
	"churnpredict/pkg/charts"
	"churnpredict/pkg/collection/repository"
	entityrepo "churnpredict/pkg/entity/repositoryImp"
)

func doc(kv ...any) entities.Document {
	d := entities.Document{}
	for i := 0; i < len(kv); i += 2 {
		d = append(d, bson.E{Key: kv[i].(string), Value: kv[i+1]})
	}
	return d
}

func openSQLite(t *testing.T) *database.SQLite {
	t.Helper()
	store, err := database.OpenSQLite(filepath.Join(t.TempDir(), "churn.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close(context.Background()) })
	return store
}

var joined = primitive.NewDateTimeFromTime(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))

func customers() []entities.Document {
	return []entities.Document{
		doc("CustomerID", "C-1", "Age", int32(45), "Plan", "Gold", "Joined", joined, "Churn", "No"),
		doc("CustomerID", "C-2", "Age", int32(72), "Plan", "Silver", "Joined", joined, "Churn", "Yes"),
		doc("CustomerID", "C-3", "Age", 8.0, "Plan", "Gold", "Joined", joined),
	}
}

// runCollectionRepositoryContract checks behaviour every backend must share.
func runCollectionRepositoryContract(t *testing.T, repo repository.CollectionRepository) {
	ctx := context.Background()

	t.Run("missing collection", func(t *testing.T) {
		docs, err := repo.FindAll(ctx, "Nothing")
		require.NoError(t, err)
		assert.Empty(t, docs)

		_, found, err := repo.FindOne(ctx, "Nothing")
		require.NoError(t, err)
		assert.False(t, found)

		types, err := repo.SampleFieldTypes(ctx, "Nothing", 10)
		require.NoError(t, err)
		assert.Empty(t, types)
	})

	t.Run("insert and read back in order", func(t *testing.T) {
		n, err := repo.InsertMany(ctx, "Customers", customers())
		require.NoError(t, err)
		assert.Equal(t, 3, n)

		docs, err := repo.FindAll(ctx, "Customers")
		require.NoError(t, err)
		require.Len(t, docs, 3)
		assert.Equal(t, []string{"CustomerID", "Age", "Plan", "Joined", "Churn"}, docs[0].Keys())
		age, _ := docs[0].Get("Age")
		assert.Equal(t, int32(45), age)
		_, hasID := docs[0].Get("_id")
		assert.False(t, hasID)

		one, found, err := repo.FindOne(ctx, "Customers")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, docs[0].Keys(), one.Keys())
	})

	t.Run("names", func(t *testing.T) {
		names, err := repo.ListNames(ctx)
		require.NoError(t, err)
		assert.Contains(t, names, "Customers")
	})

	t.Run("sampled types", func(t *testing.T) {
		types, err := repo.SampleFieldTypes(ctx, "Customers", 100)
		require.NoError(t, err)
		got := map[string]string{}
		for _, ft := range types {
			got[ft.Name] = ft.Type
		}
		assert.Equal(t, "string", got["Plan"])
		assert.Equal(t, "date", got["Joined"])
		assert.Contains(t, []string{"int", "double"}, got["Age"])
		assert.Equal(t, map[string]string{"Age": got["Age"], "Plan": "string", "Churn": "string"}, charts.FilterFieldTypes(types))
	})

	t.Run("value counts", func(t *testing.T) {
		counts, err := repo.FieldValueCounts(ctx, "Customers", "Plan")
		require.NoError(t, err)
		assert.ElementsMatch(t, []entities.ValueCount{
			{Label: "Gold", Count: 2},
			{Label: "Silver", Count: 1},
		}, counts)

		counts, err = repo.FieldValueCounts(ctx, "Customers", "Churn")
		require.NoError(t, err)
		assert.ElementsMatch(t, []entities.ValueCount{
			{Label: "No", Count: 1},
			{Label: "Yes", Count: 1},
			{Label: nil, Count: 1},
		}, counts)
	})

	t.Run("empty insert", func(t *testing.T) {
		n, err := repo.InsertMany(ctx, "Customers", nil)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}

func TestSQLiteCollectionRepository(t *testing.T) {
	runCollectionRepositoryContract(t, NewSQLite(openSQLite(t).DB))
}

func TestSQLiteListsEntitiesOnceSaved(t *testing.T) {
	store := openSQLite(t)
	repo := NewSQLite(store.DB)
	ctx := context.Background()

	names, err := repo.ListNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{}, names)

	_, err = entityrepo.NewSQLite(store.DB).Create(ctx, &entities.Entity{
		EntityName: "Acme",
		Channels:   []entities.Channel{{Name: "Email", Keywords: []string{"k"}}},
	})
	require.NoError(t, err)
	_, err = repo.InsertMany(ctx, "Banking", []entities.Document{doc("Tenure", 3)})
	require.NoError(t, err)

	names, err = repo.ListNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Banking", "Entities"}, names)

	docs, err := repo.FindAll(ctx, "Entities")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, []string{"EntityName", "Purpose", "Domain", "Channels"}, docs[0].Keys())
}

func TestSQLiteValueCountsMergeNumericTypes(t *testing.T) {
	repo := NewSQLite(openSQLite(t).DB)
	ctx := context.Background()
	_, err := repo.InsertMany(ctx, "Mixed", []entities.Document{
		doc("N", int32(5)), doc("N", int64(5)), doc("N", 5.0), doc("N", "5"),
	})
	require.NoError(t, err)

	counts, err := repo.FieldValueCounts(ctx, "Mixed", "N")

	require.NoError(t, err)
	assert.Equal(t, []entities.ValueCount{
		{Label: int32(5), Count: 3},
		{Label: "5", Count: 1},
	}, counts)
}
