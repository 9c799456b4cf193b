package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"inkpost/internal/models"
)

// PostStore handles post CRUD and keeps the post-tag association table in
// sync with each post's desired tag names. Every write runs in a single
// transaction so a failed tag sync rolls back the post row with it.
type PostStore struct {
	db *sql.DB
}

// NewPostStore creates a new PostStore with the given database connection.
func NewPostStore(db *sql.DB) *PostStore {
	return &PostStore{db: db}
}

const postColumns = `id, title, content, summary, slug, category, author,
	cover_image, draft, read_time_millis, created_at, updated_at`

// scanPost scans a full post row.
func scanPost(scanner interface{ Scan(...any) error }) (*models.Post, error) {
	var p models.Post
	err := scanner.Scan(
		&p.ID, &p.Title, &p.Content, &p.Summary, &p.Slug, &p.Category,
		&p.Author, &p.CoverImage, &p.Draft, &p.ReadTimeMillis,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns all posts with their display columns and tag names,
// newest first (ordered by created_at descending).
func (s *PostStore) List() ([]models.PostSummary, error) {
	rows, err := s.db.Query(`
		SELECT id, title, content, summary, updated_at, cover_image, read_time_millis
		FROM posts
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var items []models.PostSummary
	var ids []uuid.UUID
	for rows.Next() {
		var p models.PostSummary
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Content, &p.Summary,
			&p.UpdatedAt, &p.CoverImage, &p.ReadTimeMillis,
		); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		p.Tags = []string{}
		items = append(items, p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	tagsByPost, err := s.tagsForPosts(ids)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if tags, ok := tagsByPost[items[i].ID]; ok {
			items[i].Tags = tags
		}
	}
	return items, nil
}

// Find retrieves a post by id. Returns nil if not found.
func (s *PostStore) Find(id uuid.UUID) (*models.Post, error) {
	row := s.db.QueryRow(`SELECT `+postColumns+` FROM posts WHERE id = $1`, id)
	p, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find post by id: %w", err)
	}
	return p, nil
}

// TagsFor returns the tag names associated with one post, sorted by name.
func (s *PostStore) TagsFor(postID uuid.UUID) ([]string, error) {
	tagsByPost, err := s.tagsForPosts([]uuid.UUID{postID})
	if err != nil {
		return nil, err
	}
	tags, ok := tagsByPost[postID]
	if !ok {
		return []string{}, nil
	}
	return tags, nil
}

// tagsForPosts loads tag names for a set of posts in one joined query.
func (s *PostStore) tagsForPosts(ids []uuid.UUID) (map[uuid.UUID][]string, error) {
	if len(ids) == 0 {
		return map[uuid.UUID][]string{}, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	rows, err := s.db.Query(`
		SELECT pt.post_id, t.name
		FROM post_tags pt
		JOIN tags t ON t.id = pt.tag_id
		WHERE pt.post_id IN (`+strings.Join(placeholders, ", ")+`)
		ORDER BY t.name
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("load post tags: %w", err)
	}
	defer rows.Close()

	result := make(map[uuid.UUID][]string)
	for rows.Next() {
		var postID uuid.UUID
		var name string
		if err := rows.Scan(&postID, &name); err != nil {
			return nil, fmt.Errorf("scan post tag: %w", err)
		}
		result[postID] = append(result[postID], name)
	}
	return result, rows.Err()
}

// Create inserts a post authored by the given user and synchronizes its
// tag associations, all in one transaction.
func (s *PostStore) Create(author uuid.UUID, category uuid.UUID, in models.PostInput) (*models.Post, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("create post begin: %w", err)
	}
	defer tx.Rollback()

	row := tx.QueryRow(`
		INSERT INTO posts (title, content, summary, slug, category, author, cover_image, read_time_millis)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+postColumns,
		in.Title, in.Content, in.Summary, in.Slug, category, author,
		in.CoverImage, in.ReadTimeMillis,
	)
	p, err := scanPost(row)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	if err := reconcileTags(tx, p.ID, in.Tags); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("create post commit: %w", err)
	}
	return p, nil
}

// Update overwrites a post's mutable fields and synchronizes its tag
// associations in one transaction. Returns nil if the post does not exist.
func (s *PostStore) Update(id uuid.UUID, category uuid.UUID, in models.PostInput) (*models.Post, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("update post begin: %w", err)
	}
	defer tx.Rollback()

	row := tx.QueryRow(`
		UPDATE posts SET
			title = $1, content = $2, summary = $3, slug = $4, category = $5,
			cover_image = $6, read_time_millis = $7, updated_at = $8
		WHERE id = $9
		RETURNING `+postColumns,
		in.Title, in.Content, in.Summary, in.Slug, category,
		in.CoverImage, in.ReadTimeMillis, time.Now(), id,
	)
	p, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}

	if err := reconcileTags(tx, p.ID, in.Tags); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("update post commit: %w", err)
	}
	return p, nil
}

// reconcileTags makes the post_tags rows for postID exactly match the given
// tag names. Missing tags are created first (insert skips names that already
// exist, so concurrent callers introducing the same name are harmless), then
// their ids are re-read, stale associations are deleted, and the remaining
// pairs are inserted with the duplicate-pair conflict treated as a no-op.
// Tag rows themselves are never deleted; a tag that loses its last
// association stays behind for reuse.
func reconcileTags(tx *sql.Tx, postID uuid.UUID, names []string) error {
	unique := dedupe(names)

	if len(unique) == 0 {
		if _, err := tx.Exec(`DELETE FROM post_tags WHERE post_id = $1`, postID); err != nil {
			return fmt.Errorf("clear post tags: %w", err)
		}
		return nil
	}

	placeholders := make([]string, len(unique))
	args := make([]any, len(unique))
	for i, name := range unique {
		placeholders[i] = fmt.Sprintf("($%d)", i+1)
		args[i] = name
	}
	_, err := tx.Exec(`
		INSERT INTO tags (name)
		VALUES `+strings.Join(placeholders, ", ")+`
		ON CONFLICT (name) DO NOTHING
	`, args...)
	if err != nil {
		return fmt.Errorf("upsert tags: %w", err)
	}

	// Re-read ids: the insert above returns nothing for pre-existing names.
	for i := range unique {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	rows, err := tx.Query(`
		SELECT id FROM tags WHERE name IN (`+strings.Join(placeholders, ", ")+`)
	`, args...)
	if err != nil {
		return fmt.Errorf("resolve tags: %w", err)
	}
	defer rows.Close()

	var tagIDs []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("scan tag id: %w", err)
		}
		tagIDs = append(tagIDs, id)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	// Delete stale associations before inserting new ones so a pair never
	// exists twice mid-sequence.
	delArgs := make([]any, 0, len(tagIDs)+1)
	delArgs = append(delArgs, postID)
	delPlaceholders := make([]string, len(tagIDs))
	for i, tagID := range tagIDs {
		delPlaceholders[i] = fmt.Sprintf("$%d", i+2)
		delArgs = append(delArgs, tagID)
	}
	_, err = tx.Exec(`
		DELETE FROM post_tags
		WHERE post_id = $1 AND tag_id NOT IN (`+strings.Join(delPlaceholders, ", ")+`)
	`, delArgs...)
	if err != nil {
		return fmt.Errorf("delete stale post tags: %w", err)
	}

	insPlaceholders := make([]string, len(tagIDs))
	insArgs := make([]any, 0, len(tagIDs)+1)
	insArgs = append(insArgs, postID)
	for i, tagID := range tagIDs {
		insPlaceholders[i] = fmt.Sprintf("($1, $%d)", i+2)
		insArgs = append(insArgs, tagID)
	}
	_, err = tx.Exec(`
		INSERT INTO post_tags (post_id, tag_id)
		VALUES `+strings.Join(insPlaceholders, ", ")+`
		ON CONFLICT (post_id, tag_id) DO NOTHING
	`, insArgs...)
	if err != nil {
		return fmt.Errorf("insert post tags: %w", err)
	}

	return nil
}

// dedupe returns the unique non-empty names in input order.
func dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	var out []string
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
