package tags

import "github.com/yohamta/donburi"

var (
	Player      = donburi.NewTag().SetName("Player")
	Enemy       = donburi.NewTag().SetName("Enemy")
	Boss        = donburi.NewTag().SetName("Boss")
	PlayerShot  = donburi.NewTag().SetName("PlayerShot")
	EnemyBullet = donburi.NewTag().SetName("EnemyBullet")
	Collectible = donburi.NewTag().SetName("Collectible")
	Shadow      = donburi.NewTag().SetName("Shadow")
	Effect      = donburi.NewTag().SetName("Effect")

	// SimpleReference marks invisible anchor entities created for motion
	// references.
	SimpleReference = donburi.NewTag().SetName("SimpleReference")
)

// Resolv tags for the broad-phase grids
const (
	ResolvPlayer      = "Player"
	ResolvEnemy       = "Enemy"
	ResolvPlayerShot  = "PlayerShot"
	ResolvEnemyBullet = "EnemyBullet"
)
