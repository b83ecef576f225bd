package repositories

// Owned 所有者メールを持つレコード
type Owned interface {
	OwnedBy() string
}

// OwnershipChecker リソースの所有者とリクエスト元の同一性を判定する
// 全ての所有チェックはこのインターフェース経由で行うこと
type OwnershipChecker interface {
	Verify(resource Owned, requesterEmail string) bool
}

type emailOwnershipChecker struct{}

func NewOwnershipChecker() OwnershipChecker {
	return emailOwnershipChecker{}
}

// Verify 所有者メールとリクエスト元メールを文字列の値で比較する
// レコード構造体とスカラーを直接比較してはならない（過去の不具合パターン）
func (emailOwnershipChecker) Verify(resource Owned, requesterEmail string) bool {
	return resource.OwnedBy() == requesterEmail
}
