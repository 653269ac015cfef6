package storage

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/go-redis/redis/v8"

	"github.com/bookhaven/server/internal/domain/consts"
	"github.com/bookhaven/server/internal/domain/models"
	"github.com/bookhaven/server/internal/logger"
)

const (
	cacheKeyBooks  = "bookhaven:books"
	cacheKeyPrefix = "bookhaven:book:"
)

// CachedCatalog puts a Redis read cache in front of the database catalog.
// Only the whole-catalog and single-book reads are cached; searches always
// hit the database. Writes invalidate.
type CachedCatalog struct {
	*DBStorage
	rdb *redis.Client
}

func NewCachedCatalog(dbs *DBStorage, addr string) (*CachedCatalog, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return &CachedCatalog{DBStorage: dbs, rdb: rdb}, nil
}

func (cc *CachedCatalog) GetBooks() ([]models.Book, error) {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	data, err := cc.rdb.Get(ctx, cacheKeyBooks).Bytes()
	if err == nil {
		var books []models.Book
		if err := json.Unmarshal(data, &books); err == nil {
			return books, nil
		}
		log.Warn().Msg("corrupt catalog cache entry, falling through")
	} else if !errors.Is(err, redis.Nil) {
		log.Warn().Err(err).Msg("catalog cache read failed")
	}

	books, err := cc.DBStorage.GetBooks()
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(books); err == nil {
		if err := cc.rdb.Set(ctx, cacheKeyBooks, data, consts.CatalogCacheTTL).Err(); err != nil {
			log.Warn().Err(err).Msg("catalog cache write failed")
		}
	}
	return books, nil
}

func (cc *CachedCatalog) GetBook(bid string) (models.Book, error) {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	key := cacheKeyPrefix + bid
	data, err := cc.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var book models.Book
		if err := json.Unmarshal(data, &book); err == nil {
			return book, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		log.Warn().Err(err).Msg("book cache read failed")
	}

	book, err := cc.DBStorage.GetBook(bid)
	if err != nil {
		return models.Book{}, err
	}
	if data, err := json.Marshal(book); err == nil {
		_ = cc.rdb.Set(ctx, key, data, consts.CatalogCacheTTL).Err()
	}
	return book, nil
}

func (cc *CachedCatalog) SaveBook(book models.Book) (string, error) {
	bid, err := cc.DBStorage.SaveBook(book)
	if err != nil {
		return "", err
	}
	cc.invalidate(bid)
	return bid, nil
}

func (cc *CachedCatalog) DeleteBook(bid string) error {
	if err := cc.DBStorage.DeleteBook(bid); err != nil {
		return err
	}
	cc.invalidate(bid)
	return nil
}

func (cc *CachedCatalog) invalidate(bid string) {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()
	if err := cc.rdb.Del(ctx, cacheKeyBooks, cacheKeyPrefix+bid).Err(); err != nil {
		log.Warn().Err(err).Msg("cache invalidation failed")
	}
}
