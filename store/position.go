package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/anjith1/harvest-demand-link/schema"
)

const (
	positionUpdateInterval = 5 * time.Minute
)

// UpdateFarmerPosition upserts the last reported position of a farmer.
// Updates arriving faster than positionUpdateInterval are dropped.
func (m *mongoDB) UpdateFarmerPosition(accountNumber string, latitude, longitude float64) error {
	c := m.client.Database(m.database).Collection(schema.FarmerPositionCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := bson.M{
		"account_number": accountNumber,
	}

	var p schema.FarmerPosition
	err := c.FindOne(ctx, query).Decode(&p)
	if err != nil && err != mongo.ErrNoDocuments {
		log.WithFields(log.Fields{
			"prefix":         mongoLogPrefix,
			"account_number": accountNumber,
			"error":          err,
		}).Error("farmer latest position")
		return err
	}

	now := time.Now().UTC()

	// update too fast, ignore those
	if err == nil && now.Sub(time.Unix(p.Timestamp, 0)) < positionUpdateInterval {
		return nil
	}

	current := schema.FarmerPosition{
		AccountNumber: accountNumber,
		Location: schema.GeoJSON{
			Type:        "Point",
			Coordinates: []float64{longitude, latitude},
		},
		Timestamp: now.Unix(),
	}

	if _, err := c.ReplaceOne(ctx, query, current, options.Replace().SetUpsert(true)); nil != err {
		log.WithFields(log.Fields{
			"prefix":         mongoLogPrefix,
			"account_number": accountNumber,
			"position":       current,
			"error":          err,
		}).Error("update farmer position")
		return err
	}

	return nil
}

func (m *mongoDB) LastFarmerPosition(accountNumber string) (*schema.FarmerPosition, error) {
	c := m.client.Database(m.database).Collection(schema.FarmerPositionCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var p schema.FarmerPosition
	if err := c.FindOne(ctx, bson.M{"account_number": accountNumber}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &p, nil
}

// NearbyFarmerAccounts returns the account numbers of farmers whose last
// position is within radiusKm of a point.
func (m *mongoDB) NearbyFarmerAccounts(latitude, longitude, radiusKm float64) ([]string, error) {
	c := m.client.Database(m.database).Collection(schema.FarmerPositionCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := bson.M{
		"location": bson.M{
			"$nearSphere": bson.M{
				"$geometry": bson.M{
					"type":        "Point",
					"coordinates": []float64{longitude, latitude},
				},
				"$maxDistance": radiusKm * 1000,
			},
		},
	}

	cur, err := c.Find(ctx, query)
	if nil != err {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"lat":    latitude,
			"lng":    longitude,
			"error":  err,
		}).Error("nearby farmer accounts")
		return nil, err
	}

	accountNumbers := make([]string, 0)
	for cur.Next(ctx) {
		var p schema.FarmerPosition
		if err = cur.Decode(&p); err != nil {
			return nil, err
		}
		accountNumbers = append(accountNumbers, p.AccountNumber)
	}

	return accountNumbers, nil
}
