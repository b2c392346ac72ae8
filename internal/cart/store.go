package cart

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store est le panier de session: un ensemble ordonné d'identifiants de
// produits, indexé sur le sid du navigateur. Aucune persistance au-delà
// de la vie de la session.
type Store interface {
	Add(ctx context.Context, sid, productID string) error
	List(ctx context.Context, sid string) ([]string, error)
	Clear(ctx context.Context, sid string) error
}

// RedisStore stocke chaque panier en JSON sous "cart:<sid>" avec un TTL
// de 30 jours. Les écritures sur un même sid sont sérialisées par un
// verrou par clé: le read-modify-write de Add perdrait des ajouts sinon.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{
		rdb:   rdb,
		ttl:   30 * 24 * time.Hour,
		locks: make(map[string]*sync.Mutex),
	}
}

func key(sid string) string {
	return "cart:" + sid
}

func (s *RedisStore) lock(sid string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[sid]
	if !ok {
		l = &sync.Mutex{}
		s.locks[sid] = l
	}
	return l
}

// Add insère productID dans le panier du sid. Idempotent: un id déjà
// présent ne change rien.
func (s *RedisStore) Add(ctx context.Context, sid, productID string) error {
	l := s.lock(sid)
	l.Lock()
	defer l.Unlock()

	ids, err := s.List(ctx, sid)
	if err != nil {
		return err
	}

	ids, changed := appendUnique(ids, productID)
	if !changed {
		return nil
	}

	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, key(sid), data, s.ttl).Err()
}

// List retourne le contenu courant du panier, vide (jamais nil d'erreur)
// si la session n'a encore rien ajouté.
func (s *RedisStore) List(ctx context.Context, sid string) ([]string, error) {
	data, err := s.rdb.Get(ctx, key(sid)).Result()
	if errors.Is(err, redis.Nil) || data == "" {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}

	var ids []string
	if err := json.Unmarshal([]byte(data), &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// Clear vide le panier du sid.
func (s *RedisStore) Clear(ctx context.Context, sid string) error {
	return s.rdb.Del(ctx, key(sid)).Err()
}

// appendUnique ajoute id à la fin de ids s'il n'y figure pas déjà.
func appendUnique(ids []string, id string) ([]string, bool) {
	for _, existing := range ids {
		if existing == id {
			return ids, false
		}
	}
	return append(ids, id), true
}
