package phrasebook

import (
	"context"
	"database/sql"
	"fmt"
	"maps"
	"slices"
)

// PGRepo stores phrasebook tables in Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Load reads every stored table. Emotions with no rows are absent from the
// result. A stored replacement with an empty phrase is an error.
func (r *PGRepo) Load(ctx context.Context) (Tables, error) {
	t := Tables{
		Replacements: map[string][]Replacement{},
		Endings:      map[string]string{},
		General:      map[string][]string{},
	}

	const replacementsQuery = `
SELECT emotion, phrase, replacement
FROM phrasebook_replacements
ORDER BY emotion, position`
	rows, err := r.DB.QueryContext(ctx, replacementsQuery)
	if err != nil {
		return Tables{}, fmt.Errorf("load replacements: %w", err)
	}
	for rows.Next() {
		var emotion string
		var rep Replacement
		if err := rows.Scan(&emotion, &rep.Phrase, &rep.With); err != nil {
			rows.Close()
			return Tables{}, err
		}
		t.Replacements[emotion] = append(t.Replacements[emotion], rep)
	}
	if err := closeRows(rows); err != nil {
		return Tables{}, err
	}

	const endingsQuery = `
SELECT emotion, ending
FROM phrasebook_endings`
	rows, err = r.DB.QueryContext(ctx, endingsQuery)
	if err != nil {
		return Tables{}, fmt.Errorf("load endings: %w", err)
	}
	for rows.Next() {
		var emotion, ending string
		if err := rows.Scan(&emotion, &ending); err != nil {
			rows.Close()
			return Tables{}, err
		}
		t.Endings[emotion] = ending
	}
	if err := closeRows(rows); err != nil {
		return Tables{}, err
	}

	const adviceQuery = `
SELECT emotion, advice
FROM phrasebook_advice
ORDER BY emotion, position`
	rows, err = r.DB.QueryContext(ctx, adviceQuery)
	if err != nil {
		return Tables{}, fmt.Errorf("load advice: %w", err)
	}
	for rows.Next() {
		var emotion, advice string
		if err := rows.Scan(&emotion, &advice); err != nil {
			rows.Close()
			return Tables{}, err
		}
		t.General[emotion] = append(t.General[emotion], advice)
	}
	if err := closeRows(rows); err != nil {
		return Tables{}, err
	}
	if err := t.Validate(); err != nil {
		return Tables{}, fmt.Errorf("stored phrasebook: %w", err)
	}
	return t, nil
}

// Save replaces the stored entries of every emotion present in t, in
// emotion order, inside one transaction.
func (r *PGRepo) Save(ctx context.Context, t Tables) error {
	if err := t.Validate(); err != nil {
		return err
	}
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, emotion := range slices.Sorted(maps.Keys(t.Replacements)) {
		list := t.Replacements[emotion]
		if _, err := tx.ExecContext(ctx, `DELETE FROM phrasebook_replacements WHERE emotion = $1`, emotion); err != nil {
			return fmt.Errorf("clear replacements %s: %w", emotion, err)
		}
		for i, rep := range list {
			if _, err := tx.ExecContext(ctx, `
INSERT INTO phrasebook_replacements (emotion, position, phrase, replacement)
VALUES ($1, $2, $3, $4)`, emotion, i, rep.Phrase, rep.With); err != nil {
				return fmt.Errorf("insert replacement %s/%d: %w", emotion, i, err)
			}
		}
	}
	for _, emotion := range slices.Sorted(maps.Keys(t.Endings)) {
		ending := t.Endings[emotion]
		if _, err := tx.ExecContext(ctx, `
INSERT INTO phrasebook_endings (emotion, ending)
VALUES ($1, $2)
ON CONFLICT (emotion) DO UPDATE SET ending = EXCLUDED.ending`, emotion, ending); err != nil {
			return fmt.Errorf("upsert ending %s: %w", emotion, err)
		}
	}
	for _, emotion := range slices.Sorted(maps.Keys(t.General)) {
		list := t.General[emotion]
		if _, err := tx.ExecContext(ctx, `DELETE FROM phrasebook_advice WHERE emotion = $1`, emotion); err != nil {
			return fmt.Errorf("clear advice %s: %w", emotion, err)
		}
		for i, advice := range list {
			if _, err := tx.ExecContext(ctx, `
INSERT INTO phrasebook_advice (emotion, position, advice)
VALUES ($1, $2, $3)`, emotion, i, advice); err != nil {
				return fmt.Errorf("insert advice %s/%d: %w", emotion, i, err)
			}
		}
	}
	return tx.Commit()
}

func closeRows(rows *sql.Rows) error {
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	return rows.Close()
}
