package dal

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	_ "github.com/mattn/go-sqlite3"
	"sync"
	"time"
	"timeline_cache/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_repo.go -package mocks timeline_cache/dal IRepo

const schemaVer = 1

//go:embed scripts/*
var scripts embed.FS

type IRepo interface {
	InitUpdateDb()
	UpsertPost(post *StoredPost) error
	UpsertUser(user *StoredUser) error
	DoesUserExist(screenName string) (bool, error)
	FindScreenName(screenName string) (string, error)
	GetLatestPostId(screenName string) (uint64, error)
	GetAllScreenNames() ([]string, error)
	GetDistinctPostUserIds() ([]uint64, error)
	DeleteExcessPosts(userId uint64, limit int) (int, error)
	GetRecentPosts(screenName string, count int, includeRaw bool) ([]*StoredPost, error)
}

type Repo struct {
	cfg    *shared.Config
	logger shared.ILogger
	db     *sql.DB
	muDb   sync.RWMutex
}

func NewRepo(cfg *shared.Config, logger shared.ILogger) IRepo {

	var err error
	var db *sql.DB

	// https://phiresky.github.io/blog/2020/sqlite-performance-tuning/
	// https://github.com/mattn/go-sqlite3/issues/1022#issuecomment-1067353980
	// _synchronous=1 is "normal"
	cstr := "file:%s?cache=shared&mode=rwc&_journal_mode=WAL&_synchronous=1&_busy_timeout=5000"
	db, err = sql.Open("sqlite3", fmt.Sprintf(cstr, cfg.DbFile))
	if err != nil {
		logger.Errorf("Failed to open/create DB file: %s: %v", cfg.DbFile, err)
		panic(err)
	}

	repo := Repo{
		cfg:    cfg,
		logger: logger,
		db:     db,
	}

	return &repo
}

func (repo *Repo) InitUpdateDb() {

	dbVer := 0
	sysParamsExists := false
	var err error
	var rows *sql.Rows

	rows, err = repo.db.Query("SELECT name FROM sqlite_master WHERE type='table' AND name='sys_params'")
	if err != nil {
		repo.logger.Errorf("Failed to check if 'sys_params' table exists: %v", err)
		panic(err)
	}
	for rows.Next() {
		sysParamsExists = true
	}
	_ = rows.Close()
	if !sysParamsExists {
		repo.logger.Printf("Database appears to be empty; current schema version is %d", schemaVer)
	} else {
		row := repo.db.QueryRow("SELECT val FROM sys_params WHERE name='schema_ver'")
		if err = row.Scan(&dbVer); err != nil {
			repo.logger.Errorf("Failed to query schema version: %v", err)
			panic(err)
		}
		repo.logger.Printf("Database is at version %d; current schema version is %d", dbVer, schemaVer)
	}
	for i := dbVer; i < schemaVer; i += 1 {
		nextVer := i + 1
		fn := fmt.Sprintf("scripts/create-%02d.sql", nextVer)
		repo.logger.Printf("Running %s", fn)
		var sqlBytes []byte
		if sqlBytes, err = scripts.ReadFile(fn); err != nil {
			repo.logger.Errorf("Failed to read init script %s: %v", fn, err)
			panic(err)
		}
		sqlStr := string(sqlBytes)
		if _, err = repo.db.Exec(sqlStr); err != nil {
			repo.logger.Errorf("Failed to execute init script %s: %v", fn, err)
			panic(err)
		}
		_, err = repo.db.Exec("UPDATE sys_params SET val=? WHERE name='schema_ver'", nextVer)
		if err != nil {
			repo.logger.Errorf("Failed to update schema_ver to %d: %v", nextVer, err)
			panic(err)
		}
	}
}

func (repo *Repo) UpsertPost(post *StoredPost) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	// Second precision, UTC: keeps the stored text form sortable
	date := post.Date.UTC().Truncate(time.Second)
	_, err := repo.db.Exec(`INSERT INTO posts (id, date, user_id, url, retweet, content, raw)
		VALUES(?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET date=excluded.date, user_id=excluded.user_id, url=excluded.url,
			retweet=excluded.retweet, content=excluded.content, raw=excluded.raw`,
		post.Id, date, post.UserId, post.PermalinkUrl, post.IsRetweet, post.RenderedContent, post.RawJson)
	return err
}

func (repo *Repo) UpsertUser(user *StoredUser) (err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	var tx *sql.Tx
	if tx, err = repo.db.Begin(); err != nil {
		return
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// A screen name may have moved to a different account id: only one row per screen name
	if _, err = tx.Exec(`DELETE FROM users WHERE screen_name=? AND id<>?`, user.ScreenName, user.Id); err != nil {
		return
	}
	_, err = tx.Exec(`INSERT INTO users (id, name, screen_name, url, image)
		VALUES(?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name=excluded.name, screen_name=excluded.screen_name,
			url=excluded.url, image=excluded.image`,
		user.Id, user.DisplayName, user.ScreenName, user.ProfileUrl, user.ImageUrl)
	if err != nil {
		return
	}
	err = tx.Commit()
	return
}

func (repo *Repo) DoesUserExist(screenName string) (bool, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT COUNT(*) FROM users WHERE screen_name=?`, screenName)
	var err error
	var count int
	if err = row.Scan(&count); err != nil {
		return false, err
	}
	return count != 0, nil
}

// FindScreenName returns the stored screen name matching screenName without regard to case,
// or "" if there is none. An exact match is preferred.
func (repo *Repo) FindScreenName(screenName string) (string, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT screen_name FROM users WHERE screen_name=? COLLATE NOCASE
		ORDER BY screen_name=? DESC, id LIMIT 1`, screenName, screenName)
	var res string
	if err := row.Scan(&res); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", err
	}
	return res, nil
}

func (repo *Repo) GetLatestPostId(screenName string) (uint64, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT posts.id FROM posts JOIN users ON posts.user_id=users.id
		WHERE users.screen_name=? ORDER BY posts.id DESC LIMIT 1`, screenName)
	var res uint64
	if err := row.Scan(&res); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	return res, nil
}

func (repo *Repo) GetAllScreenNames() ([]string, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT screen_name FROM users ORDER BY screen_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := make([]string, 0)
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, err
		}
		res = append(res, name)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (repo *Repo) GetDistinctPostUserIds() ([]uint64, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT DISTINCT user_id FROM posts ORDER BY user_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := make([]uint64, 0)
	for rows.Next() {
		var id uint64
		if err = rows.Scan(&id); err != nil {
			return nil, err
		}
		res = append(res, id)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (repo *Repo) DeleteExcessPosts(userId uint64, limit int) (int, error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	res, err := repo.db.Exec(`DELETE FROM posts WHERE user_id=? AND id NOT IN
		(SELECT id FROM posts WHERE user_id=? ORDER BY date DESC, id DESC LIMIT ?)`,
		userId, userId, limit)
	if err != nil {
		return 0, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(affected), nil
}

func (repo *Repo) GetRecentPosts(screenName string, count int, includeRaw bool) ([]*StoredPost, error) {

	if count <= 0 {
		return []*StoredPost{}, nil
	}

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rawCol := "''"
	if includeRaw {
		rawCol = "posts.raw"
	}
	query := fmt.Sprintf(`SELECT posts.id, posts.date, posts.user_id, posts.url, posts.retweet, posts.content, %s,
			users.id, users.name, users.screen_name, users.url, users.image
		FROM posts JOIN users ON posts.user_id=users.id
		WHERE users.screen_name=? ORDER BY posts.id DESC LIMIT ?`, rawCol)
	rows, err := repo.db.Query(query, screenName, count)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]*StoredPost, 0, count)
	for rows.Next() {
		p := StoredPost{User: &StoredUser{}}
		err = rows.Scan(&p.Id, &p.Date, &p.UserId, &p.PermalinkUrl, &p.IsRetweet, &p.RenderedContent, &p.RawJson,
			&p.User.Id, &p.User.DisplayName, &p.User.ScreenName, &p.User.ProfileUrl, &p.User.ImageUrl)
		if err != nil {
			return nil, err
		}
		res = append(res, &p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}
