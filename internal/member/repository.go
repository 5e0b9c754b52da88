package member

import (
	"strings"

	"gorm.io/gorm"
)

// fetchBatchSize is the page size for the full directory fetch. The hosted
// datastore caps single-query results, so the repository pulls the directory
// in fixed-size batches until it runs out of rows.
const fetchBatchSize = 1000

// searchColumns are the ten columns an OR search term is matched against.
var searchColumns = []string{
	"name",
	"firm_full_name",
	"family_head_name",
	"firm_address",
	"firm_city",
	"state",
	"city",
	"business",
	"gotra",
	"home_address",
}

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(m *Member) error {
	return r.DB.Create(m).Error
}

func (r *Repository) GetByID(id uint) (*Member, error) {
	var m Member
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repository) Update(m *Member) error {
	return r.DB.Save(m).Error
}

// Delete removes the row permanently. The directory has no soft-delete.
func (r *Repository) Delete(id uint) error {
	return r.DB.Delete(&Member{}, id).Error
}

// ListActive returns the public directory view, ordered by display name.
func (r *Repository) ListActive() ([]Member, error) {
	members := []Member{}
	err := r.DB.
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&members).Error
	return members, err
}

func (r *Repository) CountActive() (int64, error) {
	var count int64
	err := r.DB.Model(&Member{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

// FetchAll returns every member matching the optional search term, ordered by
// family head name, together with the total match count. It counts first,
// then accumulates fixed-size batches until a batch comes back short or the
// accumulator reaches the count. Reads are not snapshotted across batches:
// concurrent writes can duplicate or skip a row at a batch boundary.
func (r *Repository) FetchAll(search string) ([]Member, int64, error) {
	base := r.searchScope(search)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	all := []Member{}
	for page := 0; ; page++ {
		batch := []Member{}
		err := base.Session(&gorm.Session{}).
			Order("family_head_name ASC, id ASC").
			Limit(fetchBatchSize).
			Offset(page * fetchBatchSize).
			Find(&batch).Error
		if err != nil {
			return nil, 0, err
		}

		all = append(all, batch...)

		if len(batch) < fetchBatchSize || int64(len(all)) >= total {
			break
		}
	}

	return all, total, nil
}

func (r *Repository) searchScope(search string) *gorm.DB {
	query := r.DB.Model(&Member{})

	search = strings.TrimSpace(search)
	if search == "" {
		return query
	}

	pattern := "%" + escapeLike(strings.ToLower(search)) + "%"

	conds := make([]string, 0, len(searchColumns))
	args := make([]interface{}, 0, len(searchColumns))
	for _, col := range searchColumns {
		conds = append(conds, "LOWER("+col+") LIKE ? ESCAPE '\\'")
		args = append(args, pattern)
	}

	return query.Where(strings.Join(conds, " OR "), args...)
}

// escapeLike neutralizes LIKE wildcards and the escape character itself so a
// search term is always matched literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
