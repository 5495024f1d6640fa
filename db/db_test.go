package db

import (
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/jsphweid/notetoken/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDynamo struct {
	dynamodbiface.DynamoDBAPI
	items map[string]map[string]*dynamodb.AttributeValue
	fail  bool
}

func (f *fakeDynamo) PutItem(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
	if f.fail {
		return nil, errors.New("throttled")
	}
	f.items[*in.TableName+"/"+*in.Item["PK"].S] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
	if f.fail {
		return nil, errors.New("throttled")
	}
	return &dynamodb.GetItemOutput{Item: f.items[*in.TableName+"/"+*in.Key["PK"].S]}, nil
}

func TestPutThenGet(t *testing.T) {
	fake := &fakeDynamo{items: make(map[string]map[string]*dynamodb.AttributeValue)}
	store := NewSnapshotStore(fake, "snapshots")

	want := model.Snapshot{
		ID:           "abc",
		CreatedAt:    time.Date(2022, 7, 1, 12, 0, 0, 0, time.UTC),
		NumFiles:     2,
		NumTracks:    3,
		NumTokens:    120,
		VocabSize:    40,
		WindowLength: 50,
		NumPairs:     20,
		NumChunks:    1,
		Seed:         7,
	}
	require.NoError(t, store.Put(want))

	got, ok, err := store.Get("abc")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt))
	got.CreatedAt = want.CreatedAt
	assert.Equal(t, want, got)
}

func TestGetMissing(t *testing.T) {
	store := NewSnapshotStore(&fakeDynamo{items: make(map[string]map[string]*dynamodb.AttributeValue)}, "snapshots")
	_, ok, err := store.Get("nope")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestErrorsAreWrapped(t *testing.T) {
	store := NewSnapshotStore(&fakeDynamo{fail: true}, "snapshots")
	err := store.Put(model.Snapshot{ID: "x"})
	assert.ErrorContains(t, err, "throttled")
	_, _, err = store.Get("x")
	assert.ErrorContains(t, err, "throttled")
}
