package engine

// Player holds the mutable player state: health, score, position, and the
// bomb inventory. All mutation goes through the methods below so the
// clamping rules hold everywhere.
type Player struct {
	hp       int
	score    int
	position Position
	bombs    int
}

// NewPlayer creates a player with the given starting stats and no bombs
func NewPlayer(hp, score int, position Position) *Player {
	return &Player{hp: hp, score: score, position: position}
}

// HP returns the player's current health points
func (p *Player) HP() int {
	return p.hp
}

// TakeDamage reduces HP by the given amount, bottoming out at the loss
// sentinel value of -1
func (p *Player) TakeDamage(damage int) {
	p.hp -= damage
	if p.hp < -1 {
		p.hp = -1
	}
}

// Heal restores HP by the given amount, capped at MaxHP
func (p *Player) Heal(amount int) {
	p.hp += amount
	if p.hp > MaxHP {
		p.hp = MaxHP
	}
}

// Score returns the player's current score
func (p *Player) Score() int {
	return p.score
}

// AddScore increases the score by the given number of points
func (p *Player) AddScore(points int) {
	p.score += points
}

// SetScore overwrites the score; used for the -1 loss sentinel
func (p *Player) SetScore(score int) {
	p.score = score
}

// Position returns the player's current position
func (p *Player) Position() Position {
	return p.position
}

// SetPosition moves the player to a new position
func (p *Player) SetPosition(pos Position) {
	p.position = pos
}

// BombCount returns the number of bombs in the inventory
func (p *Player) BombCount() int {
	return p.bombs
}

// AddBombs adds bombs to the inventory
func (p *Player) AddBombs(count int) {
	p.bombs += count
}

// UseBomb consumes one bomb, reporting whether one was available
func (p *Player) UseBomb() bool {
	if p.bombs == 0 {
		return false
	}
	p.bombs--
	return true
}
