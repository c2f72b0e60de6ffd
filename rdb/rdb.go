// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//   This file is part of SYLTRIE.
//
//  SYLTRIE is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  SYLTRIE is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with SYLTRIE.  If not, see <https://www.gnu.org/licenses/>.

// Package rdb connects the API server and the tree workers through
// a Redis queue. Queries travel as JSON, results come back as gob
// so typed values (including typed errors) survive the round trip.
package rdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"syltrie/serror"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	MsgNewQuery                = "newQuery"
	MsgNewResult               = "newResult"
	DefaultQueueKey            = "syltrieQueue"
	DefaultResultChannelPrefix = "syltrieResults"
	DefaultQueryChannel        = "syltrieQueries"
	DefaultResultExpiration    = 10 * time.Minute
	DefaultQueryAnswerTimeout  = 60 * time.Second
)

var (
	ErrorEmptyQueue = errors.New("no queries in the queue")
)

type Conf struct {
	Host                   string `json:"host"`
	Port                   int    `json:"port"`
	DB                     int    `json:"db"`
	Password               string `json:"password"`
	ChannelQuery           string `json:"channelQuery"`
	ChannelResultPrefix    string `json:"channelResultPrefix"`
	QueryAnswerTimeoutSecs int    `json:"queryAnswerTimeoutSecs"`
	CachePath              string `json:"cachePath"`
}

type Query struct {
	Channel string          `json:"channel"`
	Func    string          `json:"func"`
	Args    json.RawMessage `json:"args"`
}

func (q Query) ToJSON() (string, error) {
	ans, err := json.Marshal(q)
	if err != nil {
		return "", err
	}
	return string(ans), nil
}

func DecodeQuery(q string) (Query, error) {
	var ans Query
	err := json.Unmarshal([]byte(q), &ans)
	return ans, err
}

// NewQuery prepares a query of the provided function with typed
// arguments. The channel is attached later by PublishQuery.
func NewQuery(fn string, args any) (Query, error) {
	rawArgs, err := sonic.Marshal(args)
	if err != nil {
		return Query{}, fmt.Errorf("failed to encode args for %s: %w", fn, err)
	}
	return Query{Func: fn, Args: rawArgs}, nil
}

// Adapter provides access to Redis-based communication channels
// and the worker queue.
type Adapter struct {
	ctx                 context.Context
	c                   *redis.Client
	channelQuery        string
	channelResultPrefix string
	queryAnswerTimeout  time.Duration
	cachePath           string
}

// TestConnection tests whether Redis is responding, retrying until
// the provided timeout is exhausted. It is meant to be used on
// startup where a database may still be warming up.
func (a *Adapter) TestConnection(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(a.ctx, timeout)
	defer cancel()
	tick := time.NewTicker(2 * time.Second)
	defer tick.Stop()
	for {
		err := a.c.Ping(ctx).Err()
		if err == nil {
			return nil
		}
		log.Warn().Err(err).Msg("waiting for Redis...")
		select {
		case <-ctx.Done():
			return fmt.Errorf("failed to connect to Redis within %s", timeout)
		case <-tick.C:
		}
	}
}

func (a *Adapter) SomeoneListens(query Query) (bool, error) {
	cmd := a.c.PubSubNumSub(a.ctx, query.Channel)
	if cmd.Err() != nil {
		return false, fmt.Errorf("failed to check channel listeners: %w", cmd.Err())
	}
	return cmd.Val()[query.Channel] > 0, nil
}

// PublishQuery puts the query into the worker queue and returns
// a channel the caller can wait on for the answer. In case no
// answer arrives within the configured timeout, a TimeoutError
// result is sent instead, so the caller never blocks forever.
func (a *Adapter) PublishQuery(query Query) (<-chan *WorkerResult, error) {
	query.Channel = fmt.Sprintf("%s:%s", a.channelResultPrefix, uuid.New().String())
	log.Debug().
		Str("channel", query.Channel).
		Str("func", query.Func).
		Msg("publishing query")

	msg, err := query.ToJSON()
	if err != nil {
		return nil, err
	}
	if err := a.c.LPush(a.ctx, DefaultQueueKey, msg).Err(); err != nil {
		return nil, err
	}
	sub := a.c.Subscribe(a.ctx, query.Channel)
	ans := make(chan *WorkerResult)

	go func() {
		defer func() {
			sub.Close()
			close(ans)
		}()
		select {
		case item := <-sub.Channel():
			cmd := a.c.Get(a.ctx, item.Payload)
			if cmd.Err() != nil {
				ans <- &WorkerResult{
					Value: ErrorResult{
						Func:  query.Func,
						Error: serror.InternalError{Msg: fmt.Sprintf("failed to fetch worker result: %s", cmd.Err())},
					},
				}
				return
			}
			result, err := DecodeWorkerResult([]byte(cmd.Val()))
			if err != nil {
				ans <- &WorkerResult{
					Value: ErrorResult{
						Func:  query.Func,
						Error: serror.InternalError{Msg: fmt.Sprintf("failed to decode worker result: %s", err)},
					},
				}
				return
			}
			ans <- result
		case <-time.After(a.queryAnswerTimeout):
			ans <- &WorkerResult{
				Value: ErrorResult{
					Func:  query.Func,
					Error: serror.TimeoutError{Msg: fmt.Sprintf("no worker answered within %s", a.queryAnswerTimeout)},
				},
			}
		}
	}()
	return ans, a.c.Publish(a.ctx, a.channelQuery, MsgNewQuery).Err()
}

func (a *Adapter) DequeueQuery() (Query, error) {
	cmd := a.c.RPop(a.ctx, DefaultQueueKey)
	if errors.Is(cmd.Err(), redis.Nil) {
		return Query{}, ErrorEmptyQueue
	}
	if cmd.Err() != nil {
		return Query{}, fmt.Errorf("failed to dequeue query: %w", cmd.Err())
	}
	q, err := DecodeQuery(cmd.Val())
	if err != nil {
		return Query{}, fmt.Errorf("failed to deserialize query: %w", err)
	}
	return q, nil
}

func (a *Adapter) PublishResult(channelName string, value *WorkerResult) error {
	log.Debug().
		Str("channel", channelName).
		Str("resultType", value.Value.Type().String()).
		Msg("publishing result")
	data, err := value.Serialize()
	if err != nil {
		return fmt.Errorf("failed to serialize result: %w", err)
	}
	a.c.Set(a.ctx, channelName, data, DefaultResultExpiration)
	return a.c.Publish(a.ctx, channelName, channelName).Err()
}

// Subscribe subscribes to the query notification channel shared by
// all workers.
func (a *Adapter) Subscribe() <-chan *redis.Message {
	sub := a.c.Subscribe(a.ctx, a.channelQuery)
	return sub.Channel()
}

func NewAdapter(conf *Conf, ctx context.Context) *Adapter {
	chRes := conf.ChannelResultPrefix
	chQuery := conf.ChannelQuery
	if chRes == "" {
		chRes = DefaultResultChannelPrefix
		log.Warn().
			Str("channel", chRes).
			Msg("Redis channel for results not specified, using default")
	}
	if chQuery == "" {
		chQuery = DefaultQueryChannel
		log.Warn().
			Str("channel", chQuery).
			Msg("Redis channel for queries not specified, using default")
	}
	answerTimeout := time.Duration(conf.QueryAnswerTimeoutSecs) * time.Second
	if answerTimeout == 0 {
		answerTimeout = DefaultQueryAnswerTimeout
		log.Warn().
			Dur("value", answerTimeout).
			Msg("queryAnswerTimeoutSecs not specified, using default")
	}

	return &Adapter{
		c: redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", conf.Host, conf.Port),
			Password: conf.Password,
			DB:       conf.DB,
		}),
		ctx:                 ctx,
		channelQuery:        chQuery,
		channelResultPrefix: chRes,
		queryAnswerTimeout:  answerTimeout,
		cachePath:           conf.CachePath,
	}
}
