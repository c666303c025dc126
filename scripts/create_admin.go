// 创建管理员账号脚本
//
// 后台管理接口需要 admin 角色的用户，普通注册接口只产生 user 角色。
// 首次部署后用本脚本创建管理员。
//
// 用法: go run scripts/create_admin.go -username admin -password <密码>

package main

import (
	"flag"
	"log"

	"drive_safe_backend/internal/config"
	"drive_safe_backend/internal/model"
	"drive_safe_backend/internal/repository"
	"drive_safe_backend/pkg/database"
	"drive_safe_backend/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	username := flag.String("username", "admin", "管理员用户名")
	password := flag.String("password", "", "管理员密码（至少8位）")
	flag.Parse()

	if len(*password) < 8 {
		log.Fatal("密码至少需要8位")
	}

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("数据库迁移失败: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("密码加密失败: %v", err)
	}

	admin := model.User{
		Username: *username,
		Password: string(hash),
		Role:     model.RoleAdmin,
	}

	if err := repository.NewUserRepository(db).Create(&admin); err != nil {
		log.Fatalf("创建管理员失败: %v", err)
	}

	log.Printf("管理员 %q 创建成功 (id=%d)", admin.Username, admin.ID)
}
