package gamemath

import "math"

// CalculateHomingVelocity returns velocity components to home toward a target.
func CalculateHomingVelocity(fromX, fromY, targetX, targetY, speed float64) (velX, velY float64) {
	dirX := targetX - fromX
	dirY := targetY - fromY
	dist := math.Sqrt(dirX*dirX + dirY*dirY)
	if dist > 0 {
		velX = (dirX / dist) * speed
		velY = (dirY / dist) * speed
	}
	return velX, velY
}

// NormalizeAngle wraps a radian angle into (-Pi, Pi].
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// SteerAngle turns heading toward desired by at most maxTurn radians.
func SteerAngle(heading, desired, maxTurn float64) float64 {
	diff := NormalizeAngle(desired - heading)
	if maxTurn < 0 {
		maxTurn = 0
	}
	if diff > maxTurn {
		diff = maxTurn
	} else if diff < -maxTurn {
		diff = -maxTurn
	}
	return NormalizeAngle(heading + diff)
}
