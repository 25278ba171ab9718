package consts

import "github.com/AllenHark-Inc/UDP-Shreds-Test/internal/types"

// Base58 地址常量（可读性高，适合配置与日志使用）
const (
	SystemProgramStr = "11111111111111111111111111111111"
	TokenProgramStr  = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"

	// Launchpad: PumpFun
	PumpFunProgramStr = "6EF8rrecthR5Dkzon8Nwu78hRvfCKubJ14M5uBEwF6P"
)

var (
	SystemProgram  = types.PubkeyFromBase58(SystemProgramStr)
	TokenProgram   = types.PubkeyFromBase58(TokenProgramStr)
	PumpFunProgram = types.PubkeyFromBase58(PumpFunProgramStr)
)

// PumpFun 指令方法 ID（指令 data 前 8 字节，大端序）
const (
	PumpFunCreate uint64 = 0x181ec828051c0777
)
