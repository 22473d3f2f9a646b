package application

import (
	"sync"

	"go.uber.org/zap"

	"transfer-simulator/domain/entities"
	"transfer-simulator/domain/repositories"
	"transfer-simulator/infrastructure/banks"
	"transfer-simulator/infrastructure/service/bank_service"
	"transfer-simulator/utils/checksum"
	"transfer-simulator/utils/configs"
	"transfer-simulator/utils/gpooling"
)

// SimulatorApplication coordinates the scan → bill lookup → transfer
// pipeline over a single in-memory session. Gateway calls run on the pool;
// session access is serialized by the mutex since responses arrive on pool
// goroutines in no guaranteed order.
type SimulatorApplication struct {
	Config                *configs.Config
	Logger                *zap.Logger
	IPool                 gpooling.IPool
	BankRegistry          repositories.BankRegistry
	BankServiceRepository repositories.BankServiceRepository

	mu      sync.Mutex
	session *entities.Session
}

func NewSimulatorApplication(config *configs.Config, logger *zap.Logger, pool gpooling.IPool) *SimulatorApplication {
	signer := checksum.NewSigner(config.SecretCode)

	return &SimulatorApplication{
		Config:                config,
		Logger:                logger,
		IPool:                 pool,
		BankRegistry:          banks.NewRegistryImpl(banks.ListSupportBanks),
		BankServiceRepository: bank_service.NewRepoImpl(config.GatewayURI(), signer, logger),
		session:               entities.NewSession(),
	}
}
