package store

import (
	"strings"

	"github.com/MKhiriev/summarium/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (login, name, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, login, name, password_hash, created_at;`

	findUserByLogin = `SELECT user_id, login, name, password_hash, created_at
    FROM users
    WHERE login = $1;`
)

const noteColumns = `id, user_id, title, content, sanitized_content, created_at, updated_at, archived_at, deleted_at`

// Every write sets updated_at to GREATEST(now(), updated_at + 1µs) so it
// strictly increases even when two writes land within clock resolution.
const (
	upsertNote = `INSERT INTO notes AS n (id, user_id, title, content, sanitized_content)
    VALUES ($1, $2, $3, $4, $5)
    ON CONFLICT (id) DO UPDATE SET
        title = EXCLUDED.title,
        content = EXCLUDED.content,
        sanitized_content = EXCLUDED.sanitized_content,
        updated_at = GREATEST(now(), n.updated_at + interval '1 microsecond')
    WHERE n.user_id = EXCLUDED.user_id AND n.deleted_at IS NULL
    RETURNING ` + noteColumns + `;`

	getNote = `SELECT ` + noteColumns + `
    FROM notes
    WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL;`

	archiveNote = `UPDATE notes AS n
    SET archived_at = now(), updated_at = GREATEST(now(), n.updated_at + interval '1 microsecond')
    WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
    RETURNING ` + noteColumns + `;`

	unarchiveNote = `UPDATE notes AS n
    SET archived_at = NULL, updated_at = GREATEST(now(), n.updated_at + interval '1 microsecond')
    WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
    RETURNING ` + noteColumns + `;`

	deleteNote = `UPDATE notes AS n
    SET deleted_at = now(), updated_at = GREATEST(now(), n.updated_at + interval '1 microsecond')
    WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL;`
)

const journalColumns = `id, user_id, to_char(day, 'YYYY-MM-DD'), content, sanitized_content, created_at, updated_at`

const (
	upsertJournal = `INSERT INTO journals AS j (user_id, day, content, sanitized_content)
    VALUES ($1, $2, $3, $4)
    ON CONFLICT (user_id, day) DO UPDATE SET
        content = EXCLUDED.content,
        sanitized_content = EXCLUDED.sanitized_content,
        updated_at = GREATEST(now(), j.updated_at + interval '1 microsecond')
    RETURNING ` + journalColumns + `;`

	getJournal = `SELECT ` + journalColumns + `
    FROM journals
    WHERE user_id = $1 AND day = $2;`

	listJournals = `SELECT ` + journalColumns + `
    FROM journals
    WHERE user_id = $1
    ORDER BY day DESC;`

	deleteJournal = `DELETE FROM journals WHERE user_id = $1 AND day = $2;`
)

const taskColumns = `id, user_id, title, description, sanitized_description, status, priority, due_date, created_at, updated_at`

const (
	upsertTask = `INSERT INTO tasks AS t (id, user_id, title, description, sanitized_description, status, priority, due_date)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    ON CONFLICT (id) DO UPDATE SET
        title = EXCLUDED.title,
        description = EXCLUDED.description,
        sanitized_description = EXCLUDED.sanitized_description,
        status = EXCLUDED.status,
        priority = EXCLUDED.priority,
        due_date = EXCLUDED.due_date,
        updated_at = GREATEST(now(), t.updated_at + interval '1 microsecond')
    WHERE t.user_id = EXCLUDED.user_id
    RETURNING ` + taskColumns + `;`

	getTask = `SELECT ` + taskColumns + `
    FROM tasks
    WHERE id = $1 AND user_id = $2;`

	deleteTask = `DELETE FROM tasks WHERE id = $1 AND user_id = $2;`
)

const activityColumns = `id, task_id, user_id, comment, created_at`

const (
	// createActivity inserts nothing when the task is not the user's.
	createActivity = `INSERT INTO activities (task_id, user_id, comment)
    SELECT t.id, $2::bigint, $3::text
    FROM tasks t
    WHERE t.id = $1 AND t.user_id = $2
    RETURNING ` + activityColumns + `;`

	listActivities = `SELECT ` + activityColumns + `
    FROM activities
    WHERE task_id = $1 AND user_id = $2
    ORDER BY created_at DESC;`

	deleteActivity = `DELETE FROM activities WHERE id = $1 AND user_id = $2;`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListNotesQuery selects either the live notes or the archive.
func buildListNotesQuery(userID int64, archived bool) (string, []any, error) {
	query := psql.Select(noteColumns).
		From("notes").
		Where(sq.Eq{"user_id": userID, "deleted_at": nil})

	if archived {
		query = query.Where(sq.NotEq{"archived_at": nil})
	} else {
		query = query.Where(sq.Eq{"archived_at": nil})
	}

	return query.OrderBy("updated_at DESC").ToSql()
}

// buildListTasksQuery applies the optional status and priority filters.
func buildListTasksQuery(userID int64, filter models.TaskFilter) (string, []any, error) {
	query := psql.Select(taskColumns).
		From("tasks").
		Where(sq.Eq{"user_id": userID})

	if filter.Status != "" {
		query = query.Where(sq.Eq{"status": string(filter.Status)})
	}
	if filter.Priority != "" {
		query = query.Where(sq.Eq{"priority": string(filter.Priority)})
	}

	return query.OrderBy("updated_at DESC").ToSql()
}

// buildSearchQuery matches the title and the plain-text projection of notes,
// journals and tasks owned by userID, newest first.
func buildSearchQuery(userID int64, text string, limit int) (string, []any, error) {
	pattern := "%" + escapeLike(text) + "%"

	parts := []sq.SelectBuilder{
		sq.Select("'note' AS kind", "id::text AS id", "title", "sanitized_content AS body", "updated_at").
			From("notes").
			Where(sq.Eq{"user_id": userID, "deleted_at": nil}).
			Where(sq.Or{sq.ILike{"title": pattern}, sq.ILike{"sanitized_content": pattern}}),
		sq.Select("'journal' AS kind", "to_char(day, 'YYYY-MM-DD') AS id", "to_char(day, 'YYYY-MM-DD') AS title", "sanitized_content AS body", "updated_at").
			From("journals").
			Where(sq.Eq{"user_id": userID}).
			Where(sq.ILike{"sanitized_content": pattern}),
		sq.Select("'task' AS kind", "id::text AS id", "title", "sanitized_description AS body", "updated_at").
			From("tasks").
			Where(sq.Eq{"user_id": userID}).
			Where(sq.Or{sq.ILike{"title": pattern}, sq.ILike{"sanitized_description": pattern}}),
	}

	var (
		union strings.Builder
		args  []any
	)
	for i, part := range parts {
		partSQL, partArgs, err := part.ToSql()
		if err != nil {
			return "", nil, err
		}
		if i > 0 {
			union.WriteString(" UNION ALL ")
		}
		union.WriteString(partSQL)
		args = append(args, partArgs...)
	}
	union.WriteString(" ORDER BY updated_at DESC LIMIT ?")
	args = append(args, limit)

	query, err := sq.Dollar.ReplacePlaceholders(union.String())
	if err != nil {
		return "", nil, err
	}
	return query, args, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
