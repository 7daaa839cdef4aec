package model

// Device adalah satu baris tbl_device (aux DB). UnitID bisa berupa daftar
// koma ("3,7,12") karena satu mesin dipakai beberapa unit; registrasi di
// snapshot akan memecahnya per unit.
type Device struct {
	UnitID   string `json:"unit_id"`
	DeviceID string `json:"device_id"`
	Desc     string `json:"desc"`
}
