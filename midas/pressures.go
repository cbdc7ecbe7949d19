// Copyright 2026 The go-midas Authors. All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package midas

// Pressures is the pressure parameters view of the unit. Meniscus pressures
// are in system scaled units, value = 10 x pressure[mbar]; the infeed
// pressure is in plain mbar.
type Pressures struct {
	c *Client
}

// SensorSource selects where the unit reads its pressures from (SSR).
type SensorSource int

const (
	// SensorInternal uses the sensors inside the unit (factory default).
	SensorInternal SensorSource = 0
	// SensorRemoteManifold uses the remote manifold sensors.
	SensorRemoteManifold SensorSource = 1
)

// MeniscusPressure reads the target meniscus pressure (SVP?). On
// recirculating systems this is the recirculating meniscus.
// Scaled units 0-1500, value = 10 x pressure[mbar].
func (sf Pressures) MeniscusPressure() (int, error) {
	return sf.c.getInt(OpMeniscusPressure)
}

// SetMeniscusPressure sets the target meniscus pressure (SVP).
func (sf Pressures) SetMeniscusPressure(scaled int) error {
	return sf.c.setInt(OpMeniscusPressure, scaled)
}

// NonRecircMeniscusPressure reads the target vacuum pressure (SV2?). On
// recirculating systems this is the non-recirculating meniscus.
// Scaled units 0-1500, value = 10 x pressure[mbar].
func (sf Pressures) NonRecircMeniscusPressure() (int, error) {
	return sf.c.getInt(OpNonRecircMeniscus)
}

// SetNonRecircMeniscusPressure sets the target vacuum pressure (SV2).
func (sf Pressures) SetNonRecircMeniscusPressure(scaled int) error {
	return sf.c.setInt(OpNonRecircMeniscus, scaled)
}

// InfeedPressure reads the target recirculation pump pressure in mbar
// (SRS?), range 0-255.
func (sf Pressures) InfeedPressure() (int, error) {
	return sf.c.getInt(OpInfeedPressure)
}

// SetInfeedPressure sets the target recirculation pump pressure in mbar
// (SRS).
func (sf Pressures) SetInfeedPressure(mbar int) error {
	return sf.c.setInt(OpInfeedPressure, mbar)
}

// SensorSource reads whether the unit uses internal or remote manifold
// sensors (SSR?).
func (sf Pressures) SensorSource() (SensorSource, error) {
	v, err := sf.c.getInt(OpPressureSensorSource)
	return SensorSource(v), err
}

// SetSensorSource switches between internal and remote manifold sensors
// (SSR).
func (sf Pressures) SetSensorSource(src SensorSource) error {
	return sf.c.setInt(OpPressureSensorSource, int(src))
}
