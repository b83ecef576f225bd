package repositories

import (
	"database/sql"
	"errors"
	"gin-listme/constants"
	"gin-listme/models"

	"gorm.io/gorm"
)

type IListRepository interface {
	CreateList(ownerEmail string, title string) (*models.List, error)
	FindAll(ownerEmail string) (*[]models.List, error)
	FindAllDetailed(ownerEmail string) (*[]models.List, error)
	FindOne(ownerEmail string, listID uint) (*models.List, error)
	UpdateList(ownerEmail string, listID uint, title string) (*models.List, error)
	DeleteList(ownerEmail string, listID uint) error
	CreateItem(ownerEmail string, listID uint, title string, complete bool) (*models.Item, error)
	UpdateItem(ownerEmail string, itemID uint, title string, complete bool) (*models.Item, error)
	DeleteItem(ownerEmail string, itemID uint) error
}

type ListRepository struct {
	db        *gorm.DB
	ownership OwnershipChecker
}

func NewListRepository(db *gorm.DB, ownership OwnershipChecker) IListRepository {
	return &ListRepository{db: db, ownership: ownership}
}

func (r *ListRepository) CreateList(ownerEmail string, title string) (*models.List, error) {
	newList := models.List{
		Title:      title,
		OwnerEmail: ownerEmail,
	}
	result := r.db.Create(&newList)
	if result.Error != nil {
		return nil, result.Error
	}
	return &newList, nil
}

func (r *ListRepository) FindAll(ownerEmail string) (*[]models.List, error) {
	var lists []models.List
	result := r.db.Order("id").Find(&lists, "owner_email = ?", ownerEmail)
	if result.Error != nil {
		return nil, result.Error
	}
	return &lists, nil
}

// FindAllDetailed リストとアイテムを1回のLEFT JOINで取得してネスト構造に組み立てる
// アイテムのないリストも空のItemsで必ず含まれる（JOIN行のNULL有無に依存しない）
func (r *ListRepository) FindAllDetailed(ownerEmail string) (*[]models.List, error) {
	rows, err := r.db.Table("lists").
		Select("lists.id, lists.title, items.id, items.list_id, items.title, items.complete").
		Joins("LEFT JOIN items ON items.list_id = lists.id").
		Where("lists.owner_email = ?", ownerEmail).
		Order("lists.id, items.id").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lists := []models.List{}
	index := map[uint]int{}
	for rows.Next() {
		var listID uint
		var listTitle string
		var itemID, itemListID sql.NullInt64
		var itemTitle sql.NullString
		var itemComplete sql.NullBool
		if err := rows.Scan(&listID, &listTitle, &itemID, &itemListID, &itemTitle, &itemComplete); err != nil {
			return nil, err
		}

		pos, ok := index[listID]
		if !ok {
			// Itemsは先に空スライスで初期化しておく
			lists = append(lists, models.List{
				ID:         listID,
				Title:      listTitle,
				OwnerEmail: ownerEmail,
				Items:      []models.Item{},
			})
			pos = len(lists) - 1
			index[listID] = pos
		}
		if itemID.Valid {
			lists[pos].Items = append(lists[pos].Items, models.Item{
				ID:       uint(itemID.Int64),
				ListID:   uint(itemListID.Int64),
				Title:    itemTitle.String,
				Complete: itemComplete.Bool,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &lists, nil
}

// findOwnedList idでリストを解決し、所有チェックに失敗した場合も「見つからない」として扱う
// 他ユーザーのリソースの存在を漏らさないため
func (r *ListRepository) findOwnedList(ownerEmail string, listID uint) (*models.List, error) {
	var list models.List
	result := r.db.First(&list, "id = ?", listID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.New(constants.ErrListNotFound)
		}
		return nil, result.Error
	}
	if !r.ownership.Verify(list, ownerEmail) {
		return nil, errors.New(constants.ErrListNotFound)
	}
	return &list, nil
}

func (r *ListRepository) FindOne(ownerEmail string, listID uint) (*models.List, error) {
	list, err := r.findOwnedList(ownerEmail, listID)
	if err != nil {
		return nil, err
	}

	items := []models.Item{}
	if err := r.db.Order("id").Find(&items, "list_id = ?", list.ID).Error; err != nil {
		return nil, err
	}
	list.Items = items
	return list, nil
}

func (r *ListRepository) UpdateList(ownerEmail string, listID uint, title string) (*models.List, error) {
	list, err := r.findOwnedList(ownerEmail, listID)
	if err != nil {
		return nil, err
	}

	if err := r.db.Model(list).Update("title", title).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// DeleteList アイテム→リスト本体の順で1トランザクションで削除する
// リスト本体の削除が0件の場合は並行削除との競合なので失敗として返す
func (r *ListRepository) DeleteList(ownerEmail string, listID uint) error {
	list, err := r.findOwnedList(ownerEmail, listID)
	if err != nil {
		return err
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("list_id = ?", list.ID).Delete(&models.Item{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", list.ID).Delete(&models.List{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errors.New(constants.ErrUnexpected)
		}
		return nil
	})
}

func (r *ListRepository) CreateItem(ownerEmail string, listID uint, title string, complete bool) (*models.Item, error) {
	list, err := r.findOwnedList(ownerEmail, listID)
	if err != nil {
		return nil, err
	}

	newItem := models.Item{
		ListID:   list.ID,
		Title:    title,
		Complete: complete,
	}
	result := r.db.Create(&newItem)
	if result.Error != nil {
		return nil, result.Error
	}
	return &newItem, nil
}

// findOwnedItem アイテム→親リスト→所有者の順に解決する
// アイテム不在と所有者不一致は呼び出し側から区別できない
func (r *ListRepository) findOwnedItem(ownerEmail string, itemID uint) (*models.Item, error) {
	var item models.Item
	result := r.db.First(&item, "id = ?", itemID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.New(constants.ErrItemNotFound)
		}
		return nil, result.Error
	}

	var list models.List
	result = r.db.First(&list, "id = ?", item.ListID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.New(constants.ErrItemNotFound)
		}
		return nil, result.Error
	}
	if !r.ownership.Verify(list, ownerEmail) {
		return nil, errors.New(constants.ErrItemNotFound)
	}
	return &item, nil
}

func (r *ListRepository) UpdateItem(ownerEmail string, itemID uint, title string, complete bool) (*models.Item, error) {
	item, err := r.findOwnedItem(ownerEmail, itemID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"title": title, "complete": complete}
	if err := r.db.Model(item).Updates(updates).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (r *ListRepository) DeleteItem(ownerEmail string, itemID uint) error {
	item, err := r.findOwnedItem(ownerEmail, itemID)
	if err != nil {
		return err
	}

	result := r.db.Delete(&models.Item{}, "id = ?", item.ID)
	if result.Error != nil {
		return result.Error
	}
	// 削除済みの行をもう一度削除しようとした場合も「見つからない」として扱う
	if result.RowsAffected == 0 {
		return errors.New(constants.ErrItemNotFound)
	}
	return nil
}
