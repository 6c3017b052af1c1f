// Package collision keeps moving entities out of blocking grid cells and
// out of each other.
package collision

import "math"

// TileChecker interface for checking if tiles block movement
type TileChecker interface {
	IsTileBlocking(tileX, tileY int) bool
	GetWorldBounds() (width, height int)
}

// CollisionSystem manages all collision detection in the game
type CollisionSystem struct {
	tileChecker TileChecker
	entities    map[string]*Entity
}

// NewCollisionSystem creates a collision system over a grid of unit cells.
func NewCollisionSystem(tileChecker TileChecker) *CollisionSystem {
	return &CollisionSystem{
		tileChecker: tileChecker,
		entities:    make(map[string]*Entity),
	}
}

// RegisterEntity adds an entity to the collision system
func (cs *CollisionSystem) RegisterEntity(entity *Entity) {
	cs.entities[entity.ID] = entity
}

// UnregisterEntity removes an entity from the collision system
func (cs *CollisionSystem) UnregisterEntity(id string) {
	delete(cs.entities, id)
}

// GetEntityByID returns the entity with the given ID, or nil if not found
func (cs *CollisionSystem) GetEntityByID(id string) *Entity {
	return cs.entities[id]
}

// UpdateTileChecker swaps the tile source, used when a new map is loaded.
func (cs *CollisionSystem) UpdateTileChecker(tileChecker TileChecker) {
	cs.tileChecker = tileChecker
}

// CanMoveTo checks if an entity can move to the specified position
func (cs *CollisionSystem) CanMoveTo(entityID string, newX, newY float64) bool {
	entity, exists := cs.entities[entityID]
	if !exists {
		return false
	}

	tempBox := entity.BoundingBox.At(newX, newY)
	return cs.canMoveToWorldPosition(tempBox) && cs.canMoveToEntityPosition(entityID, tempBox)
}

// Move applies (dx, dy) one axis at a time so an entity slides along
// walls instead of stopping dead. It returns the resulting position.
func (cs *CollisionSystem) Move(entityID string, dx, dy float64) (float64, float64) {
	entity, exists := cs.entities[entityID]
	if !exists {
		return 0, 0
	}
	box := entity.BoundingBox
	if dx != 0 && cs.CanMoveTo(entityID, box.X+dx, box.Y) {
		box.X += dx
	}
	if dy != 0 && cs.CanMoveTo(entityID, box.X, box.Y+dy) {
		box.Y += dy
	}
	return box.X, box.Y
}

// canMoveToWorldPosition checks collision with world tiles
func (cs *CollisionSystem) canMoveToWorldPosition(boundingBox *BoundingBox) bool {
	width, height := cs.tileChecker.GetWorldBounds()
	minX, minY, maxX, maxY := boundingBox.GetBounds()

	startTileX := int(math.Floor(minX))
	startTileY := int(math.Floor(minY))
	endTileX := int(math.Floor(maxX))
	endTileY := int(math.Floor(maxY))

	for tileY := startTileY; tileY <= endTileY; tileY++ {
		for tileX := startTileX; tileX <= endTileX; tileX++ {
			if tileX < 0 || tileX >= width || tileY < 0 || tileY >= height {
				return false
			}
			if cs.tileChecker.IsTileBlocking(tileX, tileY) {
				return false
			}
		}
	}
	return true
}

// canMoveToEntityPosition checks collision with other entities
func (cs *CollisionSystem) canMoveToEntityPosition(movingEntityID string, boundingBox *BoundingBox) bool {
	for id, entity := range cs.entities {
		if id == movingEntityID || !entity.Solid {
			continue
		}
		if boundingBox.Intersects(entity.BoundingBox) {
			return false
		}
	}
	return true
}

// GetNearbyEntities returns entities within radius of a point
func (cs *CollisionSystem) GetNearbyEntities(x, y, radius float64, excludeID string) []*Entity {
	var nearby []*Entity
	for id, entity := range cs.entities {
		if id == excludeID {
			continue
		}
		if entity.BoundingBox.DistanceToPoint(x, y) <= radius {
			nearby = append(nearby, entity)
		}
	}
	return nearby
}
