package game

// CombatResult reports one exchange of blows.
type CombatResult struct {
	Damage      int // dealt to the monster
	Killed      bool
	Retaliation int // dealt back to the player, 0 when the monster died
}

// Attack resolves one melee exchange against m. The player always strikes
// first; a surviving monster hits back for at least 1 regardless of the
// player's defense. Attacking a dead or nil monster does nothing.
func (s *Session) Attack(m *Monster) CombatResult {
	if m == nil || !m.Alive {
		return CombatResult{}
	}

	res := CombatResult{Damage: s.player.Attack}
	m.HP -= res.Damage
	if m.HP <= 0 {
		res.Killed = true
		s.OnMonsterKilled(m)
		return res
	}

	hit := monsterAttack - s.player.Defense
	if hit < 1 {
		hit = 1
	}
	res.Retaliation = hit
	s.player.HP -= hit
	if s.player.HP <= 0 {
		s.player.HP = 0
		s.gameOver = true
	}
	return res
}
