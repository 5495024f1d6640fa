package db

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/jsphweid/notetoken/model"
	"github.com/pkg/errors"
)

// SnapshotStore keeps one item per dataset build, keyed by snapshot ID.
type SnapshotStore struct {
	client dynamodbiface.DynamoDBAPI
	table  string
}

func NewSnapshotStore(client dynamodbiface.DynamoDBAPI, table string) *SnapshotStore {
	return &SnapshotStore{client: client, table: table}
}

// Connect opens a DynamoDB client against endpoint (e.g. a local
// dynamodb at http://localhost:8000).
func Connect(endpoint, table string) (*SnapshotStore, error) {
	session, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: aws.String(endpoint),
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not create a new DynamoDB session")
	}
	return NewSnapshotStore(dynamodb.New(session), table), nil
}

func (s *SnapshotStore) Put(snap model.Snapshot) error {
	item, err := dynamodbattribute.MarshalMap(snap)
	if err != nil {
		return errors.Wrap(err, "could not marshal snapshot")
	}
	_, err = s.client.PutItem(&dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	return errors.Wrap(err, "error from DynamoDB")
}

func (s *SnapshotStore) Get(id string) (model.Snapshot, bool, error) {
	var snap model.Snapshot
	res, err := s.client.GetItem(&dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key: map[string]*dynamodb.AttributeValue{
			"PK": {S: aws.String(id)},
		},
	})
	if err != nil {
		return snap, false, errors.Wrap(err, "error from DynamoDB")
	}
	if len(res.Item) == 0 {
		return snap, false, nil
	}
	if err := dynamodbattribute.UnmarshalMap(res.Item, &snap); err != nil {
		return snap, false, errors.Wrap(err, "could not unmarshal snapshot")
	}
	return snap, true, nil
}
