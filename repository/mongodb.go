package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/krishna-dhulipalla/OutreachOps/models"
	"github.com/krishna-dhulipalla/OutreachOps/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	// 集合名
	UsersCollection            = "users"
	CompaniesCollection        = "companies"
	PeopleCollection           = "people"
	TouchpointsCollection      = "touchpoints"
	FollowUpsCollection        = "followUps"
	WaitlistCollection         = "waitlist"
	ApiOperationLogsCollection = "apiOperationLogs"
)

var (
	client *mongo.Client
	db     *mongo.Database
	ctx    = context.Background()
)

// InitMongoDB 初始化MongoDB连接
func InitMongoDB(uri, dbName string) error {
	// 设置连接超时
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	// 创建客户端
	var err error
	clientOptions := options.Client().ApplyURI(uri)
	client, err = mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return fmt.Errorf("连接MongoDB失败: %w", err)
	}

	// 检查连接
	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	defer pingCancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("ping MongoDB失败: %w", err)
	}

	// 选择数据库
	db = client.Database(dbName)
	utils.Logger.Info().Str("database", dbName).Msg("已连接到MongoDB")

	return nil
}

// CloseMongoDB 关闭MongoDB连接
func CloseMongoDB() {
	if client != nil {
		if err := client.Disconnect(ctx); err != nil {
			utils.Logger.Error().Err(err).Msg("断开MongoDB连接失败")
			return
		}
		utils.Logger.Info().Msg("已断开MongoDB连接")
	}
}

// InitializeCollections 初始化数据库集合
func InitializeCollections() error {
	collections := []string{
		UsersCollection,
		CompaniesCollection,
		PeopleCollection,
		TouchpointsCollection,
		FollowUpsCollection,
		WaitlistCollection,
		ApiOperationLogsCollection,
	}

	for _, collName := range collections {
		// 检查集合是否存在
		collExists, err := CollectionExists(collName)
		if err != nil {
			return fmt.Errorf("检查集合失败: %w", err)
		}

		// 如果不存在则创建
		if !collExists {
			if err := db.CreateCollection(ctx, collName); err != nil {
				return fmt.Errorf("创建集合失败: %w", err)
			}
			utils.Logger.Info().Str("collection", collName).Msg("创建集合成功")
		}
	}

	return nil
}

// CollectionExists 检查集合是否存在
func CollectionExists(collName string) (bool, error) {
	collections, err := db.ListCollectionNames(ctx, bson.M{"name": collName})
	if err != nil {
		return false, err
	}

	for _, name := range collections {
		if name == collName {
			return true, nil
		}
	}

	return false, nil
}

// InitializeOperatorAccount 初始化运营者账户（单用户系统，只在首次启动时创建）
func InitializeOperatorAccount(username, password string) error {
	usersCollection := db.Collection(UsersCollection)

	count, err := usersCollection.CountDocuments(ctx, bson.M{"role": models.UserRoleOPERATOR})
	if err != nil {
		return fmt.Errorf("检查运营者账户失败: %w", err)
	}

	// 如果已存在，则不创建
	if count > 0 {
		utils.Logger.Info().Msg("运营者账户已存在，跳过创建")
		return nil
	}

	operator := models.User{
		Username:  username,
		Password:  utils.HashPassword(password),
		Role:      models.UserRoleOPERATOR,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	_, err = usersCollection.InsertOne(ctx, operator)
	if err != nil {
		return fmt.Errorf("创建运营者账户失败: %w", err)
	}

	utils.Logger.Info().Str("username", username).Msg("已创建默认运营者账户")
	return nil
}

// GetDatabaseStatus 返回数据库连接状态和集合信息
func GetDatabaseStatus() (map[string]interface{}, error) {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx, nil); err != nil {
		return nil, err
	}

	collections, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"connected":   true,
		"database":    db.Name(),
		"collections": collections,
	}, nil
}

// GetDatabase 返回MongoDB数据库实例
func GetDatabase() *mongo.Database {
	return db
}

// GetContext 返回MongoDB操作的上下文
func GetContext() context.Context {
	return ctx
}

// Collection 返回指定名称的集合
func Collection(name string) *mongo.Collection {
	return db.Collection(name)
}
